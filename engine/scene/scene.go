package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
)

// scene implements the Scene interface.
type scene struct {
	mu       *sync.RWMutex
	name     string
	active   bool
	registry map[uint64]game_object.GameObject
	nextID   uint64

	// pending holds objects tagged wind-eligible since the last drain, in tagging order.
	// Feeding it from the tagging call site keeps the promotion sweep proportional to new
	// objects rather than to every object in the scene.
	pending []game_object.GameObject
	// queued holds every object currently in pending, so an object is never queued twice.
	queued map[game_object.GameObject]struct{}
}

// Scene is the host-side object store. It owns object IDs and the queue of objects waiting for wind promotion.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Active reports whether the scene is updated by the engine loop.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is updated by the engine loop.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Add registers objects with the scene, assigning IDs to those without one. Objects that are
	// already wind-eligible are queued for the next sweep. Adding an object that is already
	// registered is a no-op, and an object is never queued twice.
	//
	// Parameters:
	//   - objects: the objects to add
	Add(objects ...game_object.GameObject)

	// Remove unregisters the object with the given ID. Returns false if no such object exists.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - bool: true if an object was removed
	Remove(id uint64) bool

	// Object returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Object(id uint64) game_object.GameObject

	// Objects returns a snapshot of all registered objects.
	//
	// Returns:
	//   - []game_object.GameObject: the objects, in no particular order
	Objects() []game_object.GameObject

	// Len returns the number of registered objects.
	//
	// Returns:
	//   - int: the object count
	Len() int

	// PendingWindObjects drains the queued wind-eligible objects accepted by match. Eligible objects
	// match rejects stay queued for another consumer, so one promotion sweep per material kind can
	// share a scene. Objects removed from the scene or no longer eligible are dropped.
	// A nil match accepts every object.
	//
	// Parameters:
	//   - match: reports whether the caller consumes the object
	//
	// Returns:
	//   - []game_object.GameObject: the objects to promote, in tagging order
	PendingWindObjects(match func(game_object.GameObject) bool) []game_object.GameObject
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		active:   true,
		registry: make(map[uint64]game_object.GameObject),
		queued:   make(map[game_object.GameObject]struct{}),
		nextID:   1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Add(objects ...game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, obj := range objects {
		s.addLocked(obj)
	}
}

func (s *scene) addLocked(obj game_object.GameObject) {
	if obj == nil {
		return
	}
	if obj.ID() != 0 && s.registry[obj.ID()] == obj {
		return
	}
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
	}
	s.nextID = max(s.nextID, obj.ID()+1)
	s.registry[obj.ID()] = obj
	obj.SetEligibleListener(s.enqueue)
	if obj.WindState() == game_object.WindStateEligible {
		s.queueLocked(obj)
	}
}

// enqueue is installed as every registered object's eligibility listener.
func (s *scene) enqueue(obj game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueLocked(obj)
}

func (s *scene) queueLocked(obj game_object.GameObject) {
	if _, ok := s.queued[obj]; ok {
		return
	}
	s.queued[obj] = struct{}{}
	s.pending = append(s.pending, obj)
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.registry[id]
	if !ok {
		return false
	}
	obj.SetEligibleListener(nil)
	delete(s.registry, id)
	return true
}

func (s *scene) Object(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		out = append(out, obj)
	}
	return out
}

func (s *scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) PendingWindObjects(match func(game_object.GameObject) bool) []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	var out []game_object.GameObject
	kept := s.pending[:0]
	for _, obj := range s.pending {
		if s.registry[obj.ID()] != obj || obj.WindState() != game_object.WindStateEligible {
			delete(s.queued, obj)
			continue
		}
		if match != nil && !match(obj) {
			kept = append(kept, obj)
			continue
		}
		delete(s.queued, obj)
		out = append(out, obj)
	}
	clear(s.pending[len(kept):])
	s.pending = kept
	return out
}
