package model

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
)

var nextMeshID atomic.Uint64

// mesh is the implementation of the Mesh interface.
type mesh struct {
	id                    uint64
	name                  string
	meshProvider          bind_group_provider.BindGroupProvider
	vertexData, indexData []byte
	indexCount            int
	boundingRadius        float32
}

// Mesh is a shared handle to GPU-ready geometry. Many objects may reference the same Mesh;
// wind promotion records it so spawners can instance new objects from promoted prototypes.
type Mesh interface {
	// ID returns a process-unique identifier assigned at construction.
	//
	// Returns:
	//   - uint64: the mesh ID
	ID() uint64

	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU vertex/index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// VertexData returns the raw vertex data for this mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the radius of a sphere around the mesh origin enclosing all vertices.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh configured with the given options.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{
		id: nextMeshID.Add(1),
	}
	for _, opt := range options {
		opt(m)
	}
	if m.meshProvider == nil {
		m.meshProvider = bind_group_provider.NewBindGroupProvider(m.name + " Mesh")
	}
	m.meshProvider.SetIndexCount(m.indexCount)
	return m
}

func (m *mesh) ID() uint64 {
	return m.id
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) IndexData() []byte {
	return m.indexData
}

func (m *mesh) IndexCount() int {
	return m.indexCount
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}
