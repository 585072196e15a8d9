// Package wind holds the procedural wind model consumed by wind-affected materials
// and its fixed-layout GPU encoding.
package wind

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Wind is the authoritative, mutable wind configuration. It is plain data: copying a
// Wind value takes a snapshot, and no field is validated. The wind shader tolerates any
// finite value, so out-of-range inputs are forwarded unchanged.
type Wind struct {
	// Direction is the horizontal wind direction. SetDirection and WithDirection store it normalized.
	// Direct field writes and loaded presets are stored and encoded as given.
	Direction mgl32.Vec2 `json:"direction"`

	// Strength, NoiseScale, ScrollSpeed, BendExponent and RoundExponent shape the primary bend curve.
	Strength      float32 `json:"strength"`
	NoiseScale    float32 `json:"noise_scale"`
	ScrollSpeed   float32 `json:"scroll_speed"`
	BendExponent  float32 `json:"bend_exponent"`
	RoundExponent float32 `json:"round_exponent"`

	// MicroStrength, MicroNoiseScale and MicroScrollSpeed drive the secondary high-frequency layer.
	MicroStrength    float32 `json:"micro_strength"`
	MicroNoiseScale  float32 `json:"micro_noise_scale"`
	MicroScrollSpeed float32 `json:"micro_scroll_speed"`

	// SCurveSpeed, SCurveStrength and SCurveFrequency drive the oscillating S-curve layer.
	SCurveSpeed     float32 `json:"s_curve_speed"`
	SCurveStrength  float32 `json:"s_curve_strength"`
	SCurveFrequency float32 `json:"s_curve_frequency"`

	// BopSpeed and BopStrength drive the periodic vertical bop.
	BopSpeed    float32 `json:"bop_speed"`
	BopStrength float32 `json:"bop_strength"`

	TwistStrength float32 `json:"twist_strength"`

	EnableBillboarding   bool `json:"enable_billboarding"`
	EnableEdgeCorrection bool `json:"enable_edge_correction"`

	// LODThreshold is the camera distance past which the shader drops the detail layers.
	LODThreshold float32 `json:"lod_threshold"`
}

// DefaultDirection is the baseline wind direction, (1.0, 0.5) normalized.
var DefaultDirection = mgl32.Vec2{1.0, 0.5}.Normalize()

// Default returns the baseline wind state.
//
// Returns:
//   - Wind: the default wind parameters
func Default() Wind {
	return Wind{
		Direction:            DefaultDirection,
		Strength:             0.5,
		NoiseScale:           0.02,
		ScrollSpeed:          0.2,
		BendExponent:         2.0,
		RoundExponent:        2.0,
		MicroStrength:        0.1,
		MicroNoiseScale:      1.0,
		MicroScrollSpeed:     0.1,
		SCurveSpeed:          8.0,
		SCurveStrength:       0.1,
		SCurveFrequency:      2 * math.Pi * 8.0,
		BopSpeed:             100.0,
		BopStrength:          0.01,
		TwistStrength:        0.1,
		EnableBillboarding:   false,
		EnableEdgeCorrection: false,
		LODThreshold:         75.0,
	}
}

// NewWind creates a Wind starting from Default and applies the provided options in order.
//
// Parameters:
//   - options: variadic list of WindBuilderOption functions to configure the wind
//
// Returns:
//   - *Wind: the configured wind parameters
func NewWind(options ...WindBuilderOption) *Wind {
	w := Default()
	for _, opt := range options {
		opt(&w)
	}
	return &w
}

// Snapshot returns a copy of the wind parameters. Broadcast updates read the live
// value exactly once per frame through Snapshot so every material sees the same state.
//
// Returns:
//   - Wind: a value copy of w
func (w *Wind) Snapshot() Wind {
	return *w
}

// SetDirection normalizes dir and stores it. A zero vector leaves the direction unchanged.
//
// Parameters:
//   - dir: the new wind direction
func (w *Wind) SetDirection(dir mgl32.Vec2) {
	if dir.Len() == 0 {
		return
	}
	w.Direction = dir.Normalize()
}
