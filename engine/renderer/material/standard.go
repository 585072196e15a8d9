package material

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

const (
	// KindStandard is the Kind of lit standard materials.
	KindStandard = "standard"

	// StandardPipelineKey is the default pipeline for standard materials.
	StandardPipelineKey = "standard"
)

// standard is the implementation of the Standard interface.
type standard struct {
	name              string
	baseColor         [4]float32
	metallic          float32
	roughness         float32
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Standard is a lit metallic-roughness material. It is Combinable, so objects drawn with it can be promoted
// to wind-affected materials.
type Standard interface {
	Material

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Params returns the GPU uniform for this material's surface properties.
	//
	// Returns:
	//   - GPUStandardParams: the encoded parameters
	Params() GPUStandardParams

	CloneBase() Standard
	CombineWithWind(tex *noise.Texture, w wind.Wind) *WindAffected[Standard]
}

var _ Standard = &standard{}
var _ Combinable[Standard] = &standard{}

// NewStandard creates a new Standard material configured with the provided options.
// The surface parameters are staged at ParamsBinding of a fresh bind group provider.
//
// Parameters:
//   - options: variadic list of StandardBuilderOption functions to configure the material
//
// Returns:
//   - Standard: a new Standard instance
func NewStandard(options ...StandardBuilderOption) Standard {
	m := &standard{
		baseColor:   [4]float32{1, 1, 1, 1},
		metallic:    0.0,
		roughness:   1.0,
		pipelineKey: StandardPipelineKey,
	}
	for _, opt := range options {
		opt(m)
	}
	m.stage()
	return m
}

func (m *standard) stage() {
	params := m.Params()
	m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(
		m.name+" Material",
		bind_group_provider.WithStaged(ParamsBinding, params.Marshal()),
	)
}

func (m *standard) Name() string {
	return m.name
}

func (m *standard) Kind() string {
	return KindStandard
}

func (m *standard) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *standard) Metallic() float32 {
	return m.metallic
}

func (m *standard) Roughness() float32 {
	return m.roughness
}

func (m *standard) Params() GPUStandardParams {
	return GPUStandardParams{
		BaseColor: m.baseColor,
		Metallic:  m.metallic,
		Roughness: m.roughness,
	}
}

func (m *standard) PipelineKey() string {
	return m.pipelineKey
}

func (m *standard) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *standard) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *standard) CloneBase() Standard {
	c := *m
	c.stage()
	return &c
}

func (m *standard) CombineWithWind(tex *noise.Texture, w wind.Wind) *WindAffected[Standard] {
	return NewWindAffected[Standard](m.CloneBase(), tex, w)
}
