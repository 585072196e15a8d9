package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/scene"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind_plugin"
)

type countingSystem struct {
	calls []string
	err   error
}

func (c *countingSystem) Sweep(host wind_plugin.Host) error {
	c.calls = append(c.calls, host.(scene.Scene).Name())
	return c.err
}

func (c *countingSystem) Broadcast() error {
	c.calls = append(c.calls, "broadcast")
	return nil
}

func TestStepOrder(t *testing.T) {
	sys := &countingSystem{}
	var ticks int
	e := NewEngine(
		WithScene(2, scene.NewScene("b")),
		WithScene(1, scene.NewScene("a")),
		WithScene(3, scene.NewScene("off", scene.WithActive(false))),
		WithSystem(sys),
		WithTickCallback(func(float32) { ticks++ }),
	)
	if err := e.Step(0.016); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ticks != 1 {
		t.Errorf("tick callback ran %d times", ticks)
	}
	if strings.Join(sys.calls, ",") != "a,b,broadcast" {
		t.Errorf("system calls = %v, want [a b broadcast]", sys.calls)
	}
}

func TestStepBroadcastsOncePerFrame(t *testing.T) {
	tests := []struct {
		name       string
		scenes     int
		frames     int
		broadcasts int
	}{
		{"no scenes", 0, 2, 2},
		{"one scene", 1, 3, 3},
		{"three scenes", 3, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &countingSystem{}
			opts := []EngineBuilderOption{WithSystem(sys)}
			for i := 0; i < tt.scenes; i++ {
				opts = append(opts, WithScene(i, scene.NewScene("s")))
			}
			e := NewEngine(opts...)
			for i := 0; i < tt.frames; i++ {
				if err := e.Step(0); err != nil {
					t.Fatal(err)
				}
			}
			got := 0
			for _, c := range sys.calls {
				if c == "broadcast" {
					got++
				}
			}
			if got != tt.broadcasts {
				t.Errorf("broadcasts = %d, want %d", got, tt.broadcasts)
			}
			if len(sys.calls)-got != tt.scenes*tt.frames {
				t.Errorf("sweeps = %d, want %d", len(sys.calls)-got, tt.scenes*tt.frames)
			}
		})
	}
}

func TestStepSweepsEveryScene(t *testing.T) {
	scenes := []scene.Scene{scene.NewScene("north"), scene.NewScene("south")}
	base := material.NewStandard()
	for _, s := range scenes {
		for i := 0; i < 2; i++ {
			obj := game_object.NewGameObject(game_object.WithMesh(model.NewMesh()), game_object.WithMaterial(base))
			obj.MarkWindAffected()
			s.Add(obj)
		}
	}

	w := wind.NewWind()
	w.Strength = 0.7
	p := wind_plugin.NewPlugin[material.Standard](w, wind_plugin.WithTextureSize[material.Standard](8))
	if err := p.Startup(); err != nil {
		t.Fatal(err)
	}
	e := NewEngine(WithScene(0, scenes[0]), WithScene(1, scenes[1]), WithSystem(p))
	if err := e.Step(0); err != nil {
		t.Fatal(err)
	}
	if p.Registry().Len() != 4 {
		t.Fatalf("registry len = %d, want 4", p.Registry().Len())
	}
	for _, m := range p.Registry().Materials(nil) {
		if m.Uniform().Strength != 0.7 {
			t.Errorf("uniform strength = %v, want 0.7", m.Uniform().Strength)
		}
	}
}

func TestStepPropagatesErrors(t *testing.T) {
	sentinel := errors.New("boom")
	e := NewEngine(WithScene(0, scene.NewScene("s")), WithSystem(&countingSystem{err: sentinel}))
	if err := e.Step(0); !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want wrapped sentinel", err)
	}
}

func TestStepRecoversPanic(t *testing.T) {
	e := NewEngine(WithTickCallback(func(float32) { panic("bad frame") }))
	err := e.Step(0)
	if err == nil || !strings.Contains(err.Error(), "bad frame") {
		t.Errorf("err = %v, want recovered panic", err)
	}
}

func TestStepDrivesWindPlugin(t *testing.T) {
	s := scene.NewScene("meadow")
	base := material.NewStandard()
	objs := make([]game_object.GameObject, 3)
	for i := range objs {
		objs[i] = game_object.NewGameObject(game_object.WithMesh(model.NewMesh()), game_object.WithMaterial(base))
	}
	s.Add(objs...)

	w := wind.NewWind()
	p := wind_plugin.NewPlugin[material.Standard](w, wind_plugin.WithTextureSize[material.Standard](8))
	if err := p.Startup(); err != nil {
		t.Fatal(err)
	}

	frame := 0
	e := NewEngine(WithScene(0, s), WithSystem(p), WithTickCallback(func(float32) {
		frame++
		switch frame {
		case 1:
			for _, obj := range objs {
				obj.MarkWindAffected()
			}
		case 2:
			w.Strength = 0.9
		}
	}))

	if err := e.Step(0); err != nil {
		t.Fatal(err)
	}
	if p.Registry().Len() != 3 {
		t.Fatalf("registry len = %d after first frame", p.Registry().Len())
	}
	if err := e.Step(0); err != nil {
		t.Fatal(err)
	}
	for _, m := range p.Registry().Materials(nil) {
		if m.Wind().Strength != 0.9 {
			t.Errorf("strength = %v, want 0.9", m.Wind().Strength)
		}
	}
}

func TestRunUntilQuit(t *testing.T) {
	var e Engine
	ticks := 0
	e = NewEngine(WithTickRate(1000), WithTickCallback(func(float32) {
		ticks++
		if ticks == 3 {
			e.Quit()
		}
	}))
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks < 3 {
		t.Errorf("ticks = %d, want at least 3", ticks)
	}
	e.Quit()
}

func TestRunStopsOnError(t *testing.T) {
	sentinel := errors.New("fatal")
	e := NewEngine(WithTickRate(1000), WithScene(0, scene.NewScene("s")), WithSystem(&countingSystem{err: sentinel}))
	if err := e.Run(); !errors.Is(err, sentinel) {
		t.Errorf("Run err = %v, want sentinel", err)
	}
}
