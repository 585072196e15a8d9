package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-wind/common"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeBackend struct {
	calls  []string
	writes int
}

func (f *fakeBackend) InitUniformBuffer(bind_group_provider.BindGroupProvider, int, uint64) error {
	f.calls = append(f.calls, "uniform")
	return nil
}

func (f *fakeBackend) InitMesh(bind_group_provider.BindGroupProvider, []byte, []byte, int) error {
	f.calls = append(f.calls, "mesh")
	return nil
}

func (f *fakeBackend) InitTextureView(bind_group_provider.BindGroupProvider, int, common.TextureStagingData) error {
	f.calls = append(f.calls, "texture")
	return nil
}

func (f *fakeBackend) InitSampler(bind_group_provider.BindGroupProvider, int, common.SamplerStagingData) error {
	f.calls = append(f.calls, "sampler")
	return nil
}

func (f *fakeBackend) InitBindGroup(bind_group_provider.BindGroupProvider, *wgpu.BindGroupLayout, []int) error {
	f.calls = append(f.calls, "bind_group")
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes += len(writes)
}

func TestRendererDelegates(t *testing.T) {
	fb := &fakeBackend{}
	r := NewRenderer(nil, nil, WithBackend(fb))
	p := bind_group_provider.NewBindGroupProvider("test")

	_ = r.InitMesh(p, []byte{1}, []byte{2}, 1)
	_ = r.InitUniformBuffer(p, 100, 80)
	_ = r.InitTextureView(p, 101, common.TextureStagingData{})
	_ = r.InitSampler(p, 102, common.MirroredSampler("s"))
	_ = r.InitBindGroup(p, nil, []int{100, 101, 102})
	r.WriteBuffers(nil)
	r.WriteBuffers([]bind_group_provider.BufferWrite{{Provider: p, Binding: 100}})

	want := []string{"mesh", "uniform", "texture", "sampler", "bind_group"}
	if len(fb.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fb.calls, want)
	}
	for i := range want {
		if fb.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, fb.calls[i], want[i])
		}
	}
	if fb.writes != 1 {
		t.Errorf("writes = %d, want 1", fb.writes)
	}
}

func TestRendererWithoutDevice(t *testing.T) {
	r := NewRenderer(nil, nil)
	p := bind_group_provider.NewBindGroupProvider("test")

	if err := r.InitUniformBuffer(p, 100, 80); !errors.Is(err, ErrNoDevice) {
		t.Errorf("InitUniformBuffer err = %v", err)
	}
	if err := r.InitMesh(p, []byte{1}, nil, 0); !errors.Is(err, ErrNoDevice) {
		t.Errorf("InitMesh err = %v", err)
	}
	if p.VertexBuffer() != nil {
		t.Error("vertex buffer set without a device")
	}
	if err := r.InitTextureView(p, 101, common.TextureStagingData{}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("InitTextureView err = %v", err)
	}
	if err := r.InitSampler(p, 102, common.SamplerStagingData{}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("InitSampler err = %v", err)
	}
	if err := r.InitBindGroup(p, nil, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("InitBindGroup err = %v", err)
	}
	// Writes to bindings without GPU buffers are skipped.
	r.WriteBuffers([]bind_group_provider.BufferWrite{{Provider: p, Binding: 100, Data: []byte{1}}})
}
