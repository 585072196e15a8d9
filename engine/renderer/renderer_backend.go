package renderer

import (
	"github.com/Carmen-Shannon/oxy-wind/common"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackend is the GPU API surface the Renderer delegates to.
type RendererBackend interface {
	InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error
	InitMesh(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error
	InitTextureView(provider bind_group_provider.BindGroupProvider, binding int, stagingData common.TextureStagingData) error
	InitSampler(provider bind_group_provider.BindGroupProvider, binding int, samplerStagingData common.SamplerStagingData) error
	InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, bindings []int) error
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}
