package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
)

func TestAddAssignsIDs(t *testing.T) {
	s := NewScene("test")
	a := game_object.NewGameObject()
	b := game_object.NewGameObject(game_object.WithID(10))
	c := game_object.NewGameObject()
	s.Add(a, b, c, nil)

	if s.Len() != 3 {
		t.Fatalf("expected 3 objects, got %d", s.Len())
	}
	if a.ID() != 1 || b.ID() != 10 || c.ID() != 11 {
		t.Errorf("unexpected IDs %d %d %d", a.ID(), b.ID(), c.ID())
	}
	if s.Object(10) != b {
		t.Error("Object lookup failed")
	}
}

func TestPendingQueue(t *testing.T) {
	pre := game_object.NewGameObject(game_object.WithWindState(game_object.WindStateEligible))
	plain := game_object.NewGameObject()
	s := NewScene("test", WithObjects(pre, plain), WithPendingCapacity(4))

	plain.MarkWindAffected()

	pending := s.PendingWindObjects(nil)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending objects, got %d", len(pending))
	}
	if again := s.PendingWindObjects(nil); len(again) != 0 {
		t.Errorf("queue should be drained, got %d", len(again))
	}
}

func TestPendingSkipsRemovedAndPromoted(t *testing.T) {
	s := NewScene("test")
	removed := game_object.NewGameObject()
	promoted := game_object.NewGameObject()
	kept := game_object.NewGameObject()
	s.Add(removed, promoted, kept)

	removed.MarkWindAffected()
	promoted.MarkWindAffected()
	kept.MarkWindAffected()

	s.Remove(removed.ID())
	promoted.MarkPromoted()

	pending := s.PendingWindObjects(nil)
	if len(pending) != 1 || pending[0] != kept {
		t.Errorf("expected only the kept object, got %v", pending)
	}
}

func TestPendingMatchKeepsRejected(t *testing.T) {
	s := NewScene("test")
	leaf := game_object.NewGameObject()
	rock := game_object.NewGameObject()
	s.Add(leaf, rock)
	leaf.MarkWindAffected()
	rock.MarkWindAffected()

	onlyLeaf := func(obj game_object.GameObject) bool { return obj == leaf }
	got := s.PendingWindObjects(onlyLeaf)
	if len(got) != 1 || got[0] != leaf {
		t.Fatalf("expected only the leaf, got %v", got)
	}
	if again := s.PendingWindObjects(onlyLeaf); len(again) != 0 {
		t.Errorf("leaf consumed twice: %v", again)
	}
	rest := s.PendingWindObjects(nil)
	if len(rest) != 1 || rest[0] != rock {
		t.Errorf("rejected object should stay queued, got %v", rest)
	}
}

func TestPendingCapacityKeepsQueued(t *testing.T) {
	pre := game_object.NewGameObject(game_object.WithWindState(game_object.WindStateEligible))
	s := NewScene("test", WithObjects(pre), WithPendingCapacity(64))

	pending := s.PendingWindObjects(nil)
	if len(pending) != 1 || pending[0] != pre {
		t.Errorf("object queued before WithPendingCapacity was lost: %v", pending)
	}
}

func TestPendingNeverDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		eligible bool
		run      func(s Scene, obj game_object.GameObject)
	}{
		{"double add", true, func(s Scene, obj game_object.GameObject) {
			s.Add(obj)
			s.Add(obj)
		}},
		{"remove and re-add", true, func(s Scene, obj game_object.GameObject) {
			s.Add(obj)
			s.Remove(obj.ID())
			s.Add(obj)
		}},
		{"tag then re-add", false, func(s Scene, obj game_object.GameObject) {
			s.Add(obj)
			obj.MarkWindAffected()
			s.Add(obj)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene("test")
			state := game_object.WindStateNone
			if tt.eligible {
				state = game_object.WindStateEligible
			}
			obj := game_object.NewGameObject(game_object.WithWindState(state))
			tt.run(s, obj)

			pending := s.PendingWindObjects(nil)
			if len(pending) != 1 || pending[0] != obj {
				t.Fatalf("expected the object exactly once, got %d entries", len(pending))
			}
			if s.Len() != 1 {
				t.Errorf("scene len = %d, want 1", s.Len())
			}
			if again := s.PendingWindObjects(nil); len(again) != 0 {
				t.Errorf("queue not drained: %d", len(again))
			}
		})
	}
}

func TestRemoveThenReaddAfterDrainRequeues(t *testing.T) {
	s := NewScene("test")
	obj := game_object.NewGameObject(game_object.WithWindState(game_object.WindStateEligible))
	s.Add(obj)
	s.Remove(obj.ID())
	if got := s.PendingWindObjects(nil); len(got) != 0 {
		t.Fatalf("removed object drained: %v", got)
	}
	s.Add(obj)
	if got := s.PendingWindObjects(nil); len(got) != 1 {
		t.Errorf("re-added eligible object not queued, got %d", len(got))
	}
}

func TestRemoveDetachesListener(t *testing.T) {
	s := NewScene("test")
	obj := game_object.NewGameObject()
	s.Add(obj)
	if !s.Remove(obj.ID()) {
		t.Fatal("Remove returned false")
	}
	if s.Remove(obj.ID()) {
		t.Error("second Remove should return false")
	}
	obj.MarkWindAffected()
	if len(s.PendingWindObjects(nil)) != 0 {
		t.Error("removed object must not be queued")
	}
}

func TestActive(t *testing.T) {
	s := NewScene("test", WithActive(false))
	if s.Active() {
		t.Error("expected inactive scene")
	}
	s.SetActive(true)
	if !s.Active() || s.Name() != "test" {
		t.Error("SetActive or Name broken")
	}
}
