package game_object

import "testing"

func TestWindStateTransitions(t *testing.T) {
	obj := NewGameObject(WithID(7))
	if obj.WindState() != WindStateNone {
		t.Fatalf("expected none, got %v", obj.WindState())
	}

	var notified []uint64
	obj.SetEligibleListener(func(g GameObject) { notified = append(notified, g.ID()) })

	if !obj.MarkWindAffected() {
		t.Error("first tag should succeed")
	}
	if obj.MarkWindAffected() {
		t.Error("second tag should be a no-op")
	}
	if obj.WindState() != WindStateEligible {
		t.Errorf("expected eligible, got %v", obj.WindState())
	}
	if len(notified) != 1 || notified[0] != 7 {
		t.Errorf("listener should fire exactly once, got %v", notified)
	}

	obj.MarkPromoted()
	if obj.WindState() != WindStatePromoted {
		t.Errorf("expected promoted, got %v", obj.WindState())
	}
	if obj.MarkWindAffected() {
		t.Error("tagging a promoted object must not move it back to eligible")
	}
}

func TestMarkPromotedTwicePanics(t *testing.T) {
	obj := NewGameObject(WithWindState(WindStatePromoted))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double promotion")
		}
	}()
	obj.MarkPromoted()
}

func TestDefaults(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 2, 3))
	if !obj.Enabled() {
		t.Error("objects should be enabled by default")
	}
	pos, rot, scale := obj.Transform()
	if pos != [3]float32{1, 2, 3} || rot != [3]float32{} || scale != [3]float32{1, 1, 1} {
		t.Errorf("unexpected transform pos=%v rot=%v scale=%v", pos, rot, scale)
	}
}

func TestWindStateString(t *testing.T) {
	tests := map[WindState]string{
		WindStateNone:     "none",
		WindStateEligible: "eligible",
		WindStatePromoted: "promoted",
		WindState(9):      "WindState(9)",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("expected %q, got %q", want, s.String())
		}
	}
}
