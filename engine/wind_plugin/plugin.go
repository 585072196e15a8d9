package wind_plugin

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/noise"
	"github.com/Carmen-Shannon/oxy-wind/engine/profiler"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// Plugin owns the wind state of one base material kind: the live wind parameters, the shared noise
// texture and the registry of derived materials. Update, or Sweep per host followed by one Broadcast,
// must be called once per frame after host mutation. Release frees its GPU resources.
type Plugin[B material.Combinable[B]] struct {
	wind        *wind.Wind
	registry    *Registry[B]
	broadcaster Broadcaster[B]
	noise       *noise.Texture
	textureSize int
	renderer    renderer.Renderer
	profiler    *profiler.Profiler

	// meshes holds the IDs of meshes already handed to the renderer.
	meshes map[uint64]struct{}

	// noiseProvider owns the GPU noise texture view and sampler every derived material binds.
	noiseProvider bind_group_provider.BindGroupProvider
}

// NewPlugin creates a Plugin driving the given wind parameters. NewPlugin panics if w is nil.
//
// Parameters:
//   - w: the live wind parameters, mutated by the host between frames
//   - options: functional options to further configure the plugin
//
// Returns:
//   - *Plugin[B]: the plugin
func NewPlugin[B material.Combinable[B]](w *wind.Wind, options ...PluginBuilderOption[B]) *Plugin[B] {
	if w == nil {
		panic("wind_plugin: NewPlugin requires non-nil wind parameters")
	}
	p := &Plugin[B]{
		wind:          w,
		registry:      NewRegistry[B](0),
		textureSize:   noise.DefaultSize,
		meshes:        make(map[uint64]struct{}),
		noiseProvider: bind_group_provider.NewBindGroupProvider("Wind Noise"),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Startup synthesizes the shared noise texture and, with a renderer, uploads it with its mirrored sampler.
// It must run before the first Update, Sweep or Broadcast.
//
// Returns:
//   - error: error if synthesis or the GPU upload fails
func (p *Plugin[B]) Startup() error {
	tex, err := noise.Synthesize(p.textureSize)
	if err != nil {
		return fmt.Errorf("wind startup: %w", err)
	}
	p.noise = tex

	if p.renderer != nil {
		if err := p.renderer.InitTextureView(p.noiseProvider, material.NoiseTextureBinding, tex.StagingData()); err != nil {
			return fmt.Errorf("wind startup: %w", err)
		}
		if err := p.renderer.InitSampler(p.noiseProvider, material.NoiseSamplerBinding, tex.Sampler()); err != nil {
			return fmt.Errorf("wind startup: %w", err)
		}
	}
	log.Printf("[Wind] startup complete: %dx%d noise texture", tex.Size(), tex.Size())
	return nil
}

// Update runs one wind frame against a single host: Sweep, then Broadcast. The order guarantees a
// material created this frame is also updated this frame. Hosts driving several scenes call Sweep per
// scene and Broadcast once instead.
//
// Parameters:
//   - host: the object store to sweep
//
// Returns:
//   - error: a wrapped ErrPreconditionViolation or GPU error; the caller must treat it as fatal
func (p *Plugin[B]) Update(host Host) error {
	if err := p.Sweep(host); err != nil {
		return err
	}
	return p.Broadcast()
}

// Sweep promotes the newly eligible objects of host and binds each new material and mesh to the GPU.
//
// Parameters:
//   - host: the object store to sweep
//
// Returns:
//   - error: a wrapped ErrPreconditionViolation or GPU error; the caller must treat it as fatal
func (p *Plugin[B]) Sweep(host Host) error {
	if p.noise == nil {
		return fmt.Errorf("%w: Sweep called before Startup", ErrPreconditionViolation)
	}

	start := time.Now()
	before := p.registry.Len()
	created, err := Sweep(host, p.noise, p.wind.Snapshot(), p.registry)
	for _, rec := range p.registry.Since(before) {
		if bindErr := p.Bind(rec); bindErr != nil && err == nil {
			err = bindErr
		}
	}
	if err != nil {
		return err
	}
	if len(created) > 0 {
		log.Printf("[Wind] promoted %d objects (%d materials)", len(created), p.registry.Len())
	}

	if p.profiler != nil {
		p.profiler.Phase(profiler.PhaseSweep, time.Since(start))
		p.profiler.Promoted(len(created), p.registry.Len())
	}
	return nil
}

// Broadcast writes the current wind parameters into every derived material and flushes the uniform
// uploads in one renderer batch. It runs once per frame no matter how many hosts were swept.
//
// Returns:
//   - error: a wrapped ErrPreconditionViolation if called before Startup
func (p *Plugin[B]) Broadcast() error {
	if p.noise == nil {
		return fmt.Errorf("%w: Broadcast called before Startup", ErrPreconditionViolation)
	}

	start := time.Now()
	n := p.broadcaster.Broadcast(p.registry, p.wind, p.renderer)

	if p.profiler != nil {
		p.profiler.Phase(profiler.PhaseBroadcast, time.Since(start))
		p.profiler.Promoted(0, n)
	}
	return nil
}

// Bind gives a promoted record its GPU resources: the material gets its uniform buffer and the shared
// noise bindings, and the mesh is uploaded the first time any record references it.
// Without a renderer Bind does nothing. Promotion paths outside Sweep, such as an ECS bridge, call it
// for every record they append.
//
// Parameters:
//   - rec: the promotion record
//
// Returns:
//   - error: error if a GPU upload fails
func (p *Plugin[B]) Bind(rec PromotionRecord[B]) error {
	if p.renderer == nil {
		return nil
	}
	if err := p.bindMesh(rec.Mesh); err != nil {
		return err
	}

	m := rec.Material
	provider := m.BindGroupProvider()
	if err := p.renderer.InitUniformBuffer(provider, material.WindUniformBinding, wind.GPUWindUniformSize); err != nil {
		return fmt.Errorf("wind material %s: %w", m.Name(), err)
	}
	provider.SetTextureView(material.NoiseTextureBinding, p.noiseProvider.TextureView(material.NoiseTextureBinding))
	provider.SetSampler(material.NoiseSamplerBinding, p.noiseProvider.Sampler(material.NoiseSamplerBinding))
	return nil
}

// bindMesh uploads mesh geometry once. Meshes without geometry or with buffers already set are skipped.
func (p *Plugin[B]) bindMesh(mesh model.Mesh) error {
	if mesh == nil {
		return nil
	}
	if _, ok := p.meshes[mesh.ID()]; ok {
		return nil
	}
	provider := mesh.MeshProvider()
	if provider.VertexBuffer() == nil && (len(mesh.VertexData()) > 0 || len(mesh.IndexData()) > 0) {
		if err := p.renderer.InitMesh(provider, mesh.VertexData(), mesh.IndexData(), mesh.IndexCount()); err != nil {
			return fmt.Errorf("wind mesh %s: %w", mesh.Name(), err)
		}
	}
	p.meshes[mesh.ID()] = struct{}{}
	return nil
}

// Release frees the GPU noise texture, view and sampler along with every derived material's buffers.
// Borrowed noise bindings on materials are forgotten, not freed twice. Uploaded meshes belong to the
// host and are left alone. The plugin must not be updated after Release.
func (p *Plugin[B]) Release() {
	for _, m := range p.registry.Materials(nil) {
		m.BindGroupProvider().Release()
	}
	p.noiseProvider.Release()
	clear(p.meshes)
	p.noise = nil
}

// Wind returns the live wind parameters. Mutations are picked up by the next Update.
func (p *Plugin[B]) Wind() *wind.Wind {
	return p.wind
}

// Registry returns the registry of derived materials.
func (p *Plugin[B]) Registry() *Registry[B] {
	return p.registry
}

// NoiseTexture returns the shared noise texture, or nil before Startup.
func (p *Plugin[B]) NoiseTexture() *noise.Texture {
	return p.noise
}

// NoiseProvider returns the provider holding the GPU noise texture view and sampler.
func (p *Plugin[B]) NoiseProvider() bind_group_provider.BindGroupProvider {
	return p.noiseProvider
}

// Scatter spawns promoted instances from this plugin's registry. See the package-level Scatter.
//
// Parameters:
//   - cfg: the grid layout
//   - seed: the random seed
//
// Returns:
//   - []game_object.GameObject: the spawned objects
func (p *Plugin[B]) Scatter(cfg ScatterConfig, seed uint64) []game_object.GameObject {
	return Scatter(p.registry, cfg, seed)
}
