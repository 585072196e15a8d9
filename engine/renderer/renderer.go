package renderer

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-wind/common"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoDevice is returned when a GPU resource is requested from a renderer without a device.
var ErrNoDevice = errors.New("renderer has no GPU device")

// renderer implements the Renderer interface by delegating to a backend.
type renderer struct {
	mu      *sync.Mutex
	backend RendererBackend
}

// Renderer creates the GPU resources wind-affected materials bind and uploads their staged uniforms.
// Surface management and draw submission belong to the host and are not part of this interface.
type Renderer interface {
	// InitUniformBuffer creates a uniform buffer of the given size at a binding and stores it on the provider.
	//
	// Parameters:
	//   - provider: the provider to store the buffer on
	//   - binding: the binding index
	//   - size: the buffer size in bytes
	//
	// Returns:
	//   - error: error if buffer creation fails
	InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error

	// InitMesh uploads vertex and index data into GPU buffers stored on the mesh provider.
	// Empty data skips the corresponding buffer.
	//
	// Parameters:
	//   - provider: the mesh provider
	//   - vertexData: packed vertex bytes
	//   - indexData: packed index bytes
	//   - indexCount: the number of indices
	//
	// Returns:
	//   - error: error if buffer creation fails
	InitMesh(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitTextureView uploads staged pixel data to a new texture and stores the texture and its view on the
	// provider, which owns both from then on.
	//
	// Parameters:
	//   - provider: the provider to store the view on
	//   - binding: the binding index
	//   - stagingData: the pixels, extent and format
	//
	// Returns:
	//   - error: error if texture creation fails
	InitTextureView(provider bind_group_provider.BindGroupProvider, binding int, stagingData common.TextureStagingData) error

	// InitSampler creates a sampler from staging data and stores it on the provider, which owns it from then on.
	//
	// Parameters:
	//   - provider: the provider to store the sampler on
	//   - binding: the binding index
	//   - samplerStagingData: the sampler configuration
	//
	// Returns:
	//   - error: error if sampler creation fails
	InitSampler(provider bind_group_provider.BindGroupProvider, binding int, samplerStagingData common.SamplerStagingData) error

	// InitBindGroup creates the provider's bind group against a layout from the host pipeline,
	// using the resources already stored on the provider at the listed bindings.
	//
	// Parameters:
	//   - provider: the provider whose resources are bound
	//   - layout: the bind group layout of the pipeline group
	//   - bindings: the binding indices to include
	//
	// Returns:
	//   - error: error if a binding has no resource or creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, bindings []int) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	// Writes targeting a binding without a GPU buffer are skipped.
	//
	// Parameters:
	//   - writes: the buffer writes to submit
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer over an existing WebGPU device and queue owned by the host.
// Without a device every Init call returns ErrNoDevice, which lets CPU-only hosts run unchanged.
//
// Parameters:
//   - device: the GPU device
//   - queue: the device queue
//   - options: functional options to further configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(device *wgpu.Device, queue *wgpu.Queue, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu: &sync.Mutex{},
		backend: &wgpuRendererBackendImpl{
			mu:     &sync.Mutex{},
			device: device,
			queue:  queue,
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error {
	return r.backend.InitUniformBuffer(provider, binding, size)
}

func (r *renderer) InitMesh(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMesh(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitTextureView(provider bind_group_provider.BindGroupProvider, binding int, stagingData common.TextureStagingData) error {
	return r.backend.InitTextureView(provider, binding, stagingData)
}

func (r *renderer) InitSampler(provider bind_group_provider.BindGroupProvider, binding int, samplerStagingData common.SamplerStagingData) error {
	return r.backend.InitSampler(provider, binding, samplerStagingData)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, bindings []int) error {
	return r.backend.InitBindGroup(provider, layout, bindings)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	if len(writes) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.WriteBuffers(writes)
}
