// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds pixel data for a texture binding pending GPU upload.
// This is primarily used by the Renderer to create the GPU texture before the owning BindGroupProvider is bound.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture, row-major with BytesPerPixel bytes per texel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
	// Format is the GPU texture format. A zero value is treated as RGBA8UnormSrgb by the Renderer.
	Format wgpu.TextureFormat
	// BytesPerPixel is the number of bytes per texel in Pixels, used to compute the upload row pitch. A zero value is treated as 4.
	BytesPerPixel uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero-valued fields fall back to linear filtering and repeat addressing when the sampler is created.
type SamplerStagingData struct {
	// Label is the debug label given to the GPU sampler.
	Label string
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// MirroredSampler returns sampler staging data that uses mirrored-repeat addressing on every axis
// with linear filtering. Tiling a texture sampled this way across repeated geometry leaves no seam
// because each tile boundary reflects the edge texels of its neighbour.
//
// Parameters:
//   - label: the debug label for the sampler
//
// Returns:
//   - SamplerStagingData: the sampler configuration
func MirroredSampler(label string) SamplerStagingData {
	return SamplerStagingData{
		Label:        label,
		AddressModeU: wgpu.AddressModeMirrorRepeat,
		AddressModeV: wgpu.AddressModeMirrorRepeat,
		AddressModeW: wgpu.AddressModeMirrorRepeat,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
	}
}
