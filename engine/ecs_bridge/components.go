package ecs_bridge

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
)

// WindAffected tags an entity for promotion on the next sweep.
type WindAffected struct{}

// WindAffectedReady marks an entity already promoted. Sweeps skip it.
type WindAffectedReady struct{}

// MeshRef is the mesh an entity draws.
type MeshRef struct {
	Mesh model.Mesh
}

// MaterialRef is an entity's base material of kind B. Promotion replaces it with DerivedRef.
type MaterialRef[B any] struct {
	Material B
}

// DerivedRef is an entity's wind-affected material.
type DerivedRef[B any] struct {
	Material *material.WindAffected[B]
}
