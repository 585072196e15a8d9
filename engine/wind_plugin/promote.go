package wind_plugin

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// ErrPreconditionViolation is returned when an object handed to Promote cannot be promoted.
// It signals a host bug, and the engine loop treats it as fatal.
var ErrPreconditionViolation = errors.New("wind promotion precondition violated")

// Host is the object store a Sweep drains. scene.Scene satisfies it.
type Host interface {
	PendingWindObjects(match func(game_object.GameObject) bool) []game_object.GameObject
}

// Promote replaces obj's base material with a wind-affected clone seeded with w, marks obj promoted
// and appends the promotion to reg. The base material itself is left untouched, so other objects
// sharing it are unaffected.
//
// Parameters:
//   - obj: an eligible object with a mesh and a material of kind B
//   - tex: the shared noise texture
//   - w: the wind snapshot to seed the derived material with
//   - reg: the registry of kind B
//
// Returns:
//   - *material.WindAffected[B]: the derived material
//   - error: a wrapped ErrPreconditionViolation if obj cannot be promoted
func Promote[B material.Combinable[B]](obj game_object.GameObject, tex *noise.Texture, w wind.Wind, reg *Registry[B]) (*material.WindAffected[B], error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil object", ErrPreconditionViolation)
	}
	if state := obj.WindState(); state != game_object.WindStateEligible {
		return nil, fmt.Errorf("%w: object %d is %s, not eligible", ErrPreconditionViolation, obj.ID(), state)
	}
	if tex == nil {
		return nil, fmt.Errorf("%w: no noise texture for object %d", ErrPreconditionViolation, obj.ID())
	}
	mesh := obj.Mesh()
	if mesh == nil {
		return nil, fmt.Errorf("%w: object %d has no mesh", ErrPreconditionViolation, obj.ID())
	}
	base, ok := obj.Material().(B)
	if !ok {
		return nil, fmt.Errorf("%w: object %d material %T is not the base kind", ErrPreconditionViolation, obj.ID(), obj.Material())
	}

	derived := base.CombineWithWind(tex, w)
	obj.SetMaterial(derived)
	obj.MarkPromoted()
	reg.Append(PromotionRecord[B]{Mesh: mesh, Material: derived, Wind: w})
	return derived, nil
}

// IsBaseKind reports whether obj is drawn with a material of kind B.
//
// Parameters:
//   - obj: the object to check
//
// Returns:
//   - bool: true if obj's material is a B
func IsBaseKind[B any](obj game_object.GameObject) bool {
	_, ok := obj.Material().(B)
	return ok
}

// Sweep promotes every pending eligible object of kind B exactly once. Eligible objects of other kinds
// stay queued on the host for their own sweep. Sweeping with nothing pending is a no-op.
//
// Parameters:
//   - host: the object store to drain
//   - tex: the shared noise texture
//   - w: the wind snapshot new materials are seeded with
//   - reg: the registry of kind B
//
// Returns:
//   - []*material.WindAffected[B]: the materials created by this sweep
//   - error: the first precondition violation, if any
func Sweep[B material.Combinable[B]](host Host, tex *noise.Texture, w wind.Wind, reg *Registry[B]) ([]*material.WindAffected[B], error) {
	pending := host.PendingWindObjects(IsBaseKind[B])
	if len(pending) == 0 {
		return nil, nil
	}
	created := make([]*material.WindAffected[B], 0, len(pending))
	for _, obj := range pending {
		derived, err := Promote(obj, tex, w, reg)
		if err != nil {
			return created, err
		}
		created = append(created, derived)
	}
	return created, nil
}
