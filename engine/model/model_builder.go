package model

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh during construction.
type MeshBuilderOption func(*mesh)

// WithName sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: functional option to set the name
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithMeshProvider sets the BindGroupProvider holding GPU vertex/index buffers.
//
// Parameters:
//   - provider: the mesh provider
//
// Returns:
//   - MeshBuilderOption: functional option to set the mesh provider
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.meshProvider = provider
	}
}

// WithGeometry sets the raw vertex and index data and the index count.
//
// Parameters:
//   - vertexData: the packed vertex bytes
//   - indexData: the packed index bytes
//   - indexCount: the number of indices
//
// Returns:
//   - MeshBuilderOption: functional option to set the geometry
func WithGeometry(vertexData, indexData []byte, indexCount int) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = vertexData
		m.indexData = indexData
		m.indexCount = indexCount
	}
}

// WithBoundingRadius sets the bounding sphere radius.
//
// Parameters:
//   - radius: the bounding radius
//
// Returns:
//   - MeshBuilderOption: functional option to set the bounding radius
func WithBoundingRadius(radius float32) MeshBuilderOption {
	return func(m *mesh) {
		m.boundingRadius = radius
	}
}
