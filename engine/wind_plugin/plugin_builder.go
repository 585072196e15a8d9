package wind_plugin

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/profiler"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
)

// PluginBuilderOption is a functional option applied to a Plugin during construction via NewPlugin.
type PluginBuilderOption[B material.Combinable[B]] func(*Plugin[B])

// WithRenderer uploads the noise texture, sampler and per-material uniforms through r.
// Without a renderer the plugin runs CPU-side only.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - PluginBuilderOption[B]: a function that applies the renderer option
func WithRenderer[B material.Combinable[B]](r renderer.Renderer) PluginBuilderOption[B] {
	return func(p *Plugin[B]) {
		p.renderer = r
	}
}

// WithProfiler records sweep and broadcast timings on prof.
//
// Parameters:
//   - prof: the profiler
//
// Returns:
//   - PluginBuilderOption[B]: a function that applies the profiler option
func WithProfiler[B material.Combinable[B]](prof *profiler.Profiler) PluginBuilderOption[B] {
	return func(p *Plugin[B]) {
		p.profiler = prof
	}
}

// WithTextureSize overrides the noise texture size. Startup fails for non-positive sizes.
//
// Parameters:
//   - size: the texture width and height
//
// Returns:
//   - PluginBuilderOption[B]: a function that applies the size option
func WithTextureSize[B material.Combinable[B]](size int) PluginBuilderOption[B] {
	return func(p *Plugin[B]) {
		p.textureSize = size
	}
}

// WithRegistry shares an existing registry, for hosts that run the ECS sweep alongside the scene sweep.
//
// Parameters:
//   - reg: the registry
//
// Returns:
//   - PluginBuilderOption[B]: a function that applies the registry option
func WithRegistry[B material.Combinable[B]](reg *Registry[B]) PluginBuilderOption[B] {
	return func(p *Plugin[B]) {
		if reg != nil {
			p.registry = reg
		}
	}
}
