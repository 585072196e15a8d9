package ecs_bridge

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-wind/common"
	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind_plugin"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/mlange-42/ark/ecs"
)

// uniformCounter counts uniform buffer and mesh initializations instead of touching a GPU.
type uniformCounter struct {
	uniforms, meshes int
}

var _ renderer.Renderer = &uniformCounter{}

func (u *uniformCounter) InitMesh(bind_group_provider.BindGroupProvider, []byte, []byte, int) error {
	u.meshes++
	return nil
}

func (u *uniformCounter) InitUniformBuffer(bind_group_provider.BindGroupProvider, int, uint64) error {
	u.uniforms++
	return nil
}

func (u *uniformCounter) InitTextureView(bind_group_provider.BindGroupProvider, int, common.TextureStagingData) error {
	return nil
}

func (u *uniformCounter) InitSampler(bind_group_provider.BindGroupProvider, int, common.SamplerStagingData) error {
	return nil
}

func (u *uniformCounter) InitBindGroup(bind_group_provider.BindGroupProvider, *wgpu.BindGroupLayout, []int) error {
	return nil
}

func (u *uniformCounter) WriteBuffers([]bind_group_provider.BufferWrite) {}

func newTestBridge(t *testing.T) (*Bridge[material.Standard], *wind_plugin.Registry[material.Standard], *noise.Texture) {
	t.Helper()
	tex, err := noise.Synthesize(8)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	world := ecs.NewWorld()
	reg := wind_plugin.NewRegistry[material.Standard](0)
	return NewBridge(&world, reg), reg, tex
}

func TestSweepPromotesTaggedOnly(t *testing.T) {
	b, reg, tex := newTestBridge(t)
	base := material.NewStandard(material.WithName("grass"))

	tagged := b.Spawn(model.NewMesh(), base)
	plain := b.Spawn(model.NewMesh(), base)
	b.Tag(tagged)
	b.Tag(tagged)

	n, err := b.Sweep(tex, wind.Default())
	if err != nil || n != 1 {
		t.Fatalf("Sweep: n=%d err=%v", n, err)
	}
	d := b.Derived(tagged)
	if d == nil || d.Base() == base {
		t.Fatal("tagged entity has no derived material wrapping a clone")
	}
	if b.materials.Has(tagged) || !b.ready.Has(tagged) {
		t.Error("tagged entity not moved from MaterialRef to WindAffectedReady")
	}
	if b.Derived(plain) != nil || !b.materials.Has(plain) {
		t.Error("untagged entity was promoted")
	}
	if reg.Len() != 1 || reg.Records()[0].Material != d {
		t.Error("promotion not recorded")
	}

	n, err = b.Sweep(tex, wind.Default())
	if err != nil || n != 0 {
		t.Errorf("repeat sweep: n=%d err=%v", n, err)
	}
	if reg.Len() != 1 {
		t.Errorf("registry len = %d after repeat sweep", reg.Len())
	}
}

func TestSweepMany(t *testing.T) {
	b, reg, tex := newTestBridge(t)
	base := material.NewStandard()
	for i := 0; i < 100; i++ {
		b.Tag(b.Spawn(model.NewMesh(), base))
	}
	n, err := b.Sweep(tex, wind.Default())
	if err != nil || n != 100 || reg.Len() != 100 {
		t.Fatalf("n=%d len=%d err=%v", n, reg.Len(), err)
	}

	w := wind.NewWind(wind.WithStrength(0.9))
	if got := wind_plugin.BroadcastUpdate(reg, w, nil); got != 100 {
		t.Errorf("broadcast updated %d", got)
	}
	for _, m := range reg.Materials(nil) {
		if m.Wind().Strength != 0.9 {
			t.Fatal("ECS-promoted material missed the broadcast")
		}
	}
}

func TestSweepPreconditions(t *testing.T) {
	b, reg, tex := newTestBridge(t)
	if _, err := b.Sweep(nil, wind.Default()); !errors.Is(err, wind_plugin.ErrPreconditionViolation) {
		t.Errorf("nil texture err = %v", err)
	}
	b.Tag(b.Spawn(nil, material.NewStandard()))
	if _, err := b.Sweep(tex, wind.Default()); !errors.Is(err, wind_plugin.ErrPreconditionViolation) {
		t.Errorf("missing mesh err = %v", err)
	}
	if reg.Len() != 0 {
		t.Error("failed promotion recorded")
	}
}

func TestSweepBindsPromotions(t *testing.T) {
	r := &uniformCounter{}
	p := wind_plugin.NewPlugin[material.Standard](wind.NewWind(),
		wind_plugin.WithTextureSize[material.Standard](8),
		wind_plugin.WithRenderer[material.Standard](r))
	if err := p.Startup(); err != nil {
		t.Fatal(err)
	}
	world := ecs.NewWorld()
	b := NewBridge(&world, p.Registry(), WithBinder(p.Bind))

	blade := model.NewMesh(model.WithName("blade"), model.WithGeometry([]byte{1, 2, 3, 4}, []byte{0, 0}, 1))
	base := material.NewStandard()
	for i := 0; i < 3; i++ {
		b.Tag(b.Spawn(blade, base))
	}
	n, err := b.Sweep(p.NoiseTexture(), p.Wind().Snapshot())
	if err != nil || n != 3 {
		t.Fatalf("Sweep: n=%d err=%v", n, err)
	}
	if r.uniforms != 3 {
		t.Errorf("uniform buffers = %d, want 3", r.uniforms)
	}
	if r.meshes != 1 {
		t.Errorf("mesh uploads = %d, want 1", r.meshes)
	}
}

func TestSweepBinderError(t *testing.T) {
	sentinel := errors.New("no gpu")
	tests := []struct {
		name    string
		failAt  int
		entries int
		wantN   int
	}{
		{"first", 1, 3, 1},
		{"last", 3, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex, err := noise.Synthesize(8)
			if err != nil {
				t.Fatal(err)
			}
			calls := 0
			world := ecs.NewWorld()
			reg := wind_plugin.NewRegistry[material.Standard](0)
			b := NewBridge(&world, reg, WithBinder(func(wind_plugin.PromotionRecord[material.Standard]) error {
				calls++
				if calls == tt.failAt {
					return sentinel
				}
				return nil
			}))
			for i := 0; i < tt.entries; i++ {
				b.Tag(b.Spawn(model.NewMesh(), material.NewStandard()))
			}
			n, err := b.Sweep(tex, wind.Default())
			if !errors.Is(err, sentinel) {
				t.Fatalf("err = %v, want sentinel", err)
			}
			if n != tt.wantN || reg.Len() != tt.wantN {
				t.Errorf("n=%d len=%d, want %d", n, reg.Len(), tt.wantN)
			}
		})
	}
}
