package material

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// Binding indices of the wind material group. The WGSL wind shader declares the uniform,
// noise texture and noise sampler at these bindings.
const (
	ParamsBinding       = 0
	WindUniformBinding  = 100
	NoiseTextureBinding = 101
	NoiseSamplerBinding = 102
)

// Material defines the interface for a render material: a name, the pipeline it draws with,
// and the bind group provider holding its GPU-side resources.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind identifies the material type. Wind-affected materials report their base kind
	// prefixed with "wind_affected/", so every derived kind is distinct.
	//
	// Returns:
	//   - string: the material kind
	Kind() string

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)
}

// Combinable is the capability a base material exposes so it can be layered under wind displacement.
// The promotion engine only ever talks to base materials through this interface, so any base kind
// that implements it is promotable without changes to the engine.
type Combinable[B any] interface {
	Material

	// CloneBase returns an independent copy of the material, including its staged GPU parameters.
	//
	// Returns:
	//   - B: the copy
	CloneBase() B

	// CombineWithWind wraps a clone of the material in a wind-affected material seeded with w
	// and bound to the shared noise texture.
	//
	// Parameters:
	//   - tex: the shared wind noise texture
	//   - w: the wind parameters to seed the uniform with
	//
	// Returns:
	//   - *WindAffected[B]: the derived material
	CombineWithWind(tex *noise.Texture, w wind.Wind) *WindAffected[B]
}

// WindMaterial is the type-erased view of a wind-affected material used by broadcast updates and renderers.
type WindMaterial interface {
	Material

	// Wind returns the wind snapshot last applied to this material.
	//
	// Returns:
	//   - wind.Wind: the wind snapshot
	Wind() wind.Wind

	// Uniform returns the encoded uniform derived from the last applied wind snapshot.
	//
	// Returns:
	//   - wind.GPUWindUniform: the encoded uniform
	Uniform() wind.GPUWindUniform

	// SetWind overwrites the wind snapshot, re-encodes the uniform and stages it for upload.
	//
	// Parameters:
	//   - w: the new wind snapshot
	SetWind(w wind.Wind)

	// ApplyEncoded is SetWind with the encoding done by the caller.
	//
	// Parameters:
	//   - w: the wind snapshot
	//   - u: the uniform encoded from w
	//   - data: the marshaled bytes of u
	ApplyEncoded(w wind.Wind, u wind.GPUWindUniform, data []byte)

	// NoiseTexture returns the shared noise texture.
	//
	// Returns:
	//   - *noise.Texture: the noise texture
	NoiseTexture() *noise.Texture
}
