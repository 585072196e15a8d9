package material

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// WindPipelineKey is the default pipeline for wind-affected materials. The pipeline runs the
// wind vertex shader and the base kind's fragment stage.
const WindPipelineKey = "wind_affected"

// WindAffected layers wind displacement over a base material of any Combinable kind.
// Its structure is fixed after creation; only the wind snapshot and the encoded uniform
// change, on every broadcast update.
type WindAffected[B any] struct {
	name        string
	kind        string
	base        B
	wind        wind.Wind
	uniform     wind.GPUWindUniform
	noise       *noise.Texture
	pipelineKey string
	provider    bind_group_provider.BindGroupProvider
}

// NewWindAffected wraps base (which the caller must not share) with a wind uniform seeded from w
// and a reference to the shared noise texture. The uniform is staged at WindUniformBinding.
// Base kinds normally reach this through their CombineWithWind method.
//
// Parameters:
//   - base: the base material, already cloned
//   - tex: the shared noise texture
//   - w: the wind snapshot to seed with
//
// Returns:
//   - *WindAffected[B]: the derived material
func NewWindAffected[B Material](base B, tex *noise.Texture, w wind.Wind) *WindAffected[B] {
	m := &WindAffected[B]{
		name:        base.Name(),
		kind:        "wind_affected/" + base.Kind(),
		base:        base,
		noise:       tex,
		pipelineKey: WindPipelineKey,
		provider:    bind_group_provider.NewBindGroupProvider(base.Name() + " Wind"),
	}
	m.SetWind(w)
	return m
}

// Base returns the wrapped base material.
//
// Returns:
//   - B: the base material
func (m *WindAffected[B]) Base() B {
	return m.base
}

func (m *WindAffected[B]) Name() string {
	return m.name
}

func (m *WindAffected[B]) Kind() string {
	return m.kind
}

func (m *WindAffected[B]) PipelineKey() string {
	return m.pipelineKey
}

func (m *WindAffected[B]) SetPipelineKey(key string) {
	m.pipelineKey = key
}

// BindGroupProvider returns the provider holding the wind group: the uniform at WindUniformBinding
// plus the noise texture and sampler once a renderer binds them.
func (m *WindAffected[B]) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *WindAffected[B]) Wind() wind.Wind {
	return m.wind
}

func (m *WindAffected[B]) Uniform() wind.GPUWindUniform {
	return m.uniform
}

func (m *WindAffected[B]) SetWind(w wind.Wind) {
	u := wind.Encode(w)
	m.ApplyEncoded(w, u, u.Marshal())
}

// ApplyEncoded stores a snapshot whose uniform was already encoded and marshaled by the caller,
// so a broadcast encodes once for every material. data is staged as-is and must not be mutated afterwards.
//
// Parameters:
//   - w: the wind snapshot
//   - u: the uniform encoded from w
//   - data: the marshaled bytes of u
func (m *WindAffected[B]) ApplyEncoded(w wind.Wind, u wind.GPUWindUniform, data []byte) {
	m.wind = w
	m.uniform = u
	m.provider.Stage(WindUniformBinding, data)
}

func (m *WindAffected[B]) NoiseTexture() *noise.Texture {
	return m.noise
}
