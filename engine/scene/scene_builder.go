package scene

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene during construction.
type SceneBuilderOption func(*scene)

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: true to start active
//
// Returns:
//   - SceneBuilderOption: functional option to set the active state
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects registers objects when the scene is created, as if passed to Add.
//
// Parameters:
//   - objects: the objects to register
//
// Returns:
//   - SceneBuilderOption: functional option to add the objects
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.addLocked(obj)
		}
	}
}

// WithPendingCapacity reserves room in the pending promotion queue for scenes that tag many objects at once.
// Objects already queued by earlier options are kept.
//
// Parameters:
//   - n: the initial queue capacity
//
// Returns:
//   - SceneBuilderOption: functional option to size the queue
func WithPendingCapacity(n int) SceneBuilderOption {
	return func(s *scene) {
		s.pending = slices.Grow(s.pending, max(n, 0))
	}
}
