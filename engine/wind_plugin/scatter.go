package wind_plugin

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-wind/engine/game_object"
	"github.com/chewxy/math32"
)

// ScatterConfig controls the jittered grid Scatter lays instances out on.
type ScatterConfig struct {
	// GridSize is the number of cells along each axis.
	GridSize int
	// CellSize is the spacing between cell centers.
	CellSize float32
	// MaxOffset is the radius of the disc around a cell center an instance is displaced within.
	MaxOffset float32
	// MinScale and MaxScale bound the uniform scale, [MinScale, MaxScale).
	MinScale float32
	MaxScale float32
	// Origin is the world position of the grid center.
	Origin [3]float32
}

// DefaultScatterConfig returns a 50x50 grid with 0.2 spacing, up to 0.1 jitter and scales in [1, 2).
//
// Returns:
//   - ScatterConfig: the default configuration
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		GridSize:  50,
		CellSize:  0.2,
		MaxOffset: 0.1,
		MinScale:  1.0,
		MaxScale:  2.0,
	}
}

// Scatter spawns one instance per grid cell, each reusing the mesh and derived material of a random
// prototype from reg. Instances are created already promoted, so no sweep touches them and they share
// their prototype's material and its broadcast updates. The layout is deterministic for a given seed.
// Scatter returns nil when reg has no prototypes.
//
// Parameters:
//   - reg: the registry to draw prototypes from
//   - cfg: the grid layout
//   - seed: the random seed
//
// Returns:
//   - []game_object.GameObject: the spawned objects, not yet added to any scene
func Scatter[B any](reg *Registry[B], cfg ScatterConfig, seed uint64) []game_object.GameObject {
	protos := reg.Prototypes()
	if len(protos) == 0 || cfg.GridSize <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	half := float32(cfg.GridSize-1) * cfg.CellSize / 2

	out := make([]game_object.GameObject, 0, cfg.GridSize*cfg.GridSize)
	for i := range cfg.GridSize {
		for j := range cfg.GridSize {
			proto := protos[rng.IntN(len(protos))]
			dx, dz := jitter(rng, cfg.MaxOffset)
			x := cfg.Origin[0] + float32(i)*cfg.CellSize - half + dx
			z := cfg.Origin[2] + float32(j)*cfg.CellSize - half + dz
			yaw := rng.Float32() * 2 * math32.Pi
			s := cfg.MinScale + rng.Float32()*(cfg.MaxScale-cfg.MinScale)

			out = append(out, game_object.NewGameObject(
				game_object.WithMesh(proto.Mesh),
				game_object.WithMaterial(proto.Material),
				game_object.WithPosition(x, cfg.Origin[1], z),
				game_object.WithRotation(0, yaw, 0),
				game_object.WithScale(s, s, s),
				game_object.WithWindState(game_object.WindStatePromoted),
			))
		}
	}
	return out
}

// jitter returns an offset uniformly distributed over the disc of radius limit.
// The square root keeps the density even instead of clustering at the center.
func jitter(rng *rand.Rand, limit float32) (dx, dz float32) {
	r := limit * math32.Sqrt(rng.Float32())
	sin, cos := math32.Sincos(rng.Float32() * 2 * math32.Pi)
	return r * cos, r * sin
}
