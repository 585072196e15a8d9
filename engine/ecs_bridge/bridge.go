// Package ecs_bridge runs the wind promotion sweep over an ark ECS world, for hosts that keep their
// objects as entities with marker components instead of in a scene.
package ecs_bridge

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind_plugin"
	"github.com/mlange-42/ark/ecs"
)

// Bridge promotes entities of base kind B. Entities match when they have a MeshRef, a MaterialRef[B]
// and the WindAffected marker, and do not yet have WindAffectedReady.
type Bridge[B material.Combinable[B]] struct {
	filter    ecs.Filter2[MeshRef, MaterialRef[B]]
	spawner   *ecs.Map2[MeshRef, MaterialRef[B]]
	meshes    *ecs.Map[MeshRef]
	markers   *ecs.Map[WindAffected]
	ready     *ecs.Map[WindAffectedReady]
	materials *ecs.Map[MaterialRef[B]]
	derived   *ecs.Map[DerivedRef[B]]
	registry  *wind_plugin.Registry[B]

	// binder gives each new record its GPU resources, typically wind_plugin.Plugin.Bind.
	binder func(wind_plugin.PromotionRecord[B]) error

	pending []ecs.Entity
}

// BridgeOption is a functional option applied to a Bridge during construction via NewBridge.
type BridgeOption[B material.Combinable[B]] func(*Bridge[B])

// WithBinder runs bind on every record the bridge appends, so ECS promotions get the same GPU
// bindings as scene promotions. Pass the owning plugin's Bind.
//
// Parameters:
//   - bind: the binding callback
//
// Returns:
//   - BridgeOption[B]: a function that applies the binder option
func WithBinder[B material.Combinable[B]](bind func(wind_plugin.PromotionRecord[B]) error) BridgeOption[B] {
	return func(b *Bridge[B]) {
		b.binder = bind
	}
}

// NewBridge creates a Bridge over world appending promotions to reg.
// NewBridge panics if world or reg is nil.
//
// Parameters:
//   - world: the ECS world
//   - reg: the registry shared with the broadcast update
//   - options: functional options to further configure the bridge
//
// Returns:
//   - *Bridge[B]: the bridge
func NewBridge[B material.Combinable[B]](world *ecs.World, reg *wind_plugin.Registry[B], options ...BridgeOption[B]) *Bridge[B] {
	if world == nil || reg == nil {
		panic("ecs_bridge: NewBridge requires a non-nil world and registry")
	}
	b := &Bridge[B]{
		filter: *ecs.NewFilter2[MeshRef, MaterialRef[B]](world).
			With(ecs.C[WindAffected]()).
			Without(ecs.C[WindAffectedReady]()),
		spawner:   ecs.NewMap2[MeshRef, MaterialRef[B]](world),
		meshes:    ecs.NewMap[MeshRef](world),
		markers:   ecs.NewMap[WindAffected](world),
		ready:     ecs.NewMap[WindAffectedReady](world),
		materials: ecs.NewMap[MaterialRef[B]](world),
		derived:   ecs.NewMap[DerivedRef[B]](world),
		registry:  reg,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Spawn creates an entity drawing mesh with base.
//
// Parameters:
//   - mesh: the mesh
//   - base: the base material
//
// Returns:
//   - ecs.Entity: the new entity
func (b *Bridge[B]) Spawn(mesh model.Mesh, base B) ecs.Entity {
	return b.spawner.NewEntity(&MeshRef{Mesh: mesh}, &MaterialRef[B]{Material: base})
}

// Tag adds the WindAffected marker. Tagging an entity twice is a no-op.
//
// Parameters:
//   - e: the entity
func (b *Bridge[B]) Tag(e ecs.Entity) {
	if b.markers.Has(e) {
		return
	}
	b.markers.Add(e, &WindAffected{})
}

// Derived returns the wind-affected material of a promoted entity, or nil.
//
// Parameters:
//   - e: the entity
//
// Returns:
//   - *material.WindAffected[B]: the derived material or nil
func (b *Bridge[B]) Derived(e ecs.Entity) *material.WindAffected[B] {
	if !b.derived.Has(e) {
		return nil
	}
	return b.derived.Get(e).Material
}

// Sweep promotes every matching entity exactly once: its MaterialRef[B] is replaced by a DerivedRef[B]
// seeded with w and the entity is marked WindAffectedReady. With a binder each new record is bound
// before the next entity is promoted. Matches are collected before any entity
// is changed, since the world cannot be restructured during a query.
//
// Parameters:
//   - tex: the shared noise texture
//   - w: the wind snapshot new materials are seeded with
//
// Returns:
//   - int: the number of entities promoted
//   - error: a wrapped wind_plugin.ErrPreconditionViolation if an entity cannot be promoted, or the binder's error
func (b *Bridge[B]) Sweep(tex *noise.Texture, w wind.Wind) (int, error) {
	if tex == nil {
		return 0, fmt.Errorf("%w: no noise texture", wind_plugin.ErrPreconditionViolation)
	}

	b.pending = b.pending[:0]
	query := b.filter.Query()
	for query.Next() {
		b.pending = append(b.pending, query.Entity())
	}

	for i, e := range b.pending {
		mesh := b.meshes.Get(e)
		if mesh.Mesh == nil {
			return i, fmt.Errorf("%w: entity %v has no mesh", wind_plugin.ErrPreconditionViolation, e)
		}
		base := b.materials.Get(e).Material
		derived := base.CombineWithWind(tex, w)

		b.materials.Remove(e)
		b.derived.Add(e, &DerivedRef[B]{Material: derived})
		b.ready.Add(e, &WindAffectedReady{})
		rec := wind_plugin.PromotionRecord[B]{Mesh: mesh.Mesh, Material: derived, Wind: w}
		b.registry.Append(rec)
		if b.binder != nil {
			if err := b.binder(rec); err != nil {
				return i + 1, fmt.Errorf("entity %v: %w", e, err)
			}
		}
	}
	return len(b.pending), nil
}
