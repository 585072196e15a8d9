package material

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

const (
	// KindUnlit is the Kind of flat-colored unlit materials.
	KindUnlit = "unlit"

	// UnlitPipelineKey is the default pipeline for unlit materials.
	UnlitPipelineKey = "unlit"
)

type unlit struct {
	name              string
	color             [4]float32
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Unlit is a flat-colored material with no lighting response, typically used for distant cards.
type Unlit interface {
	Material

	// Color retrieves the RGBA color written to all fragments.
	//
	// Returns:
	//   - [4]float32: the color
	Color() [4]float32

	CloneBase() Unlit
	CombineWithWind(tex *noise.Texture, w wind.Wind) *WindAffected[Unlit]
}

var _ Combinable[Unlit] = &unlit{}

// NewUnlit creates a new Unlit material.
//
// Parameters:
//   - name: the material identifier
//   - color: the RGBA color
//
// Returns:
//   - Unlit: a new Unlit instance
func NewUnlit(name string, color [4]float32) Unlit {
	m := &unlit{
		name:        name,
		color:       color,
		pipelineKey: UnlitPipelineKey,
	}
	m.stage()
	return m
}

func (m *unlit) stage() {
	params := GPUUnlitParams{Color: m.color}
	m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(
		m.name+" Material",
		bind_group_provider.WithStaged(ParamsBinding, params.Marshal()),
	)
}

func (m *unlit) Name() string {
	return m.name
}

func (m *unlit) Kind() string {
	return KindUnlit
}

func (m *unlit) Color() [4]float32 {
	return m.color
}

func (m *unlit) PipelineKey() string {
	return m.pipelineKey
}

func (m *unlit) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *unlit) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *unlit) CloneBase() Unlit {
	c := *m
	c.stage()
	return &c
}

func (m *unlit) CombineWithWind(tex *noise.Texture, w wind.Wind) *WindAffected[Unlit] {
	return NewWindAffected[Unlit](m.CloneBase(), tex, w)
}
