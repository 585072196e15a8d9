package wind

import "github.com/go-gl/mathgl/mgl32"

// WindBuilderOption is a function that configures a Wind during construction.
type WindBuilderOption func(*Wind)

// WithDirection sets the wind direction, normalizing the supplied vector.
//
// Parameters:
//   - x, y: the direction components
//
// Returns:
//   - WindBuilderOption: a function that applies the direction option
func WithDirection(x, y float32) WindBuilderOption {
	return func(w *Wind) {
		w.SetDirection(mgl32.Vec2{x, y})
	}
}

// WithStrength sets the primary bend strength.
//
// Parameters:
//   - strength: the bend strength
//
// Returns:
//   - WindBuilderOption: a function that applies the strength option
func WithStrength(strength float32) WindBuilderOption {
	return func(w *Wind) {
		w.Strength = strength
	}
}

// WithNoise sets the primary noise scale and scroll speed.
//
// Parameters:
//   - scale: the world-space noise scale
//   - scrollSpeed: how fast the noise scrolls along the wind direction
//
// Returns:
//   - WindBuilderOption: a function that applies the noise option
func WithNoise(scale, scrollSpeed float32) WindBuilderOption {
	return func(w *Wind) {
		w.NoiseScale = scale
		w.ScrollSpeed = scrollSpeed
	}
}

// WithBendCurve sets the bend and round exponents of the primary bend curve.
//
// Parameters:
//   - bendExponent: exponent applied along the height of the geometry
//   - roundExponent: exponent rounding the bend profile
//
// Returns:
//   - WindBuilderOption: a function that applies the bend curve option
func WithBendCurve(bendExponent, roundExponent float32) WindBuilderOption {
	return func(w *Wind) {
		w.BendExponent = bendExponent
		w.RoundExponent = roundExponent
	}
}

// WithMicro sets the secondary high-frequency layer.
//
// Parameters:
//   - strength: micro layer strength
//   - noiseScale: micro layer noise scale
//   - scrollSpeed: micro layer scroll speed
//
// Returns:
//   - WindBuilderOption: a function that applies the micro layer option
func WithMicro(strength, noiseScale, scrollSpeed float32) WindBuilderOption {
	return func(w *Wind) {
		w.MicroStrength = strength
		w.MicroNoiseScale = noiseScale
		w.MicroScrollSpeed = scrollSpeed
	}
}

// WithSCurve sets the oscillating S-curve layer.
//
// Parameters:
//   - speed: oscillation speed
//   - strength: oscillation amplitude
//   - frequency: spatial frequency along the geometry height
//
// Returns:
//   - WindBuilderOption: a function that applies the S-curve option
func WithSCurve(speed, strength, frequency float32) WindBuilderOption {
	return func(w *Wind) {
		w.SCurveSpeed = speed
		w.SCurveStrength = strength
		w.SCurveFrequency = frequency
	}
}

// WithBop sets the periodic vertical bop.
//
// Parameters:
//   - speed: bop speed
//   - strength: bop amplitude
//
// Returns:
//   - WindBuilderOption: a function that applies the bop option
func WithBop(speed, strength float32) WindBuilderOption {
	return func(w *Wind) {
		w.BopSpeed = speed
		w.BopStrength = strength
	}
}

// WithTwistStrength sets the rotational twist.
//
// Parameters:
//   - strength: twist amount
//
// Returns:
//   - WindBuilderOption: a function that applies the twist option
func WithTwistStrength(strength float32) WindBuilderOption {
	return func(w *Wind) {
		w.TwistStrength = strength
	}
}

// WithBillboarding toggles camera-facing billboarding in the wind shader.
//
// Parameters:
//   - enabled: true to enable billboarding
//
// Returns:
//   - WindBuilderOption: a function that applies the billboarding option
func WithBillboarding(enabled bool) WindBuilderOption {
	return func(w *Wind) {
		w.EnableBillboarding = enabled
	}
}

// WithEdgeCorrection toggles edge-on normal correction in the wind shader.
//
// Parameters:
//   - enabled: true to enable edge correction
//
// Returns:
//   - WindBuilderOption: a function that applies the edge correction option
func WithEdgeCorrection(enabled bool) WindBuilderOption {
	return func(w *Wind) {
		w.EnableEdgeCorrection = enabled
	}
}

// WithLODThreshold sets the distance past which detail layers are dropped.
//
// Parameters:
//   - threshold: the LOD cutoff distance
//
// Returns:
//   - WindBuilderOption: a function that applies the LOD threshold option
func WithLODThreshold(threshold float32) WindBuilderOption {
	return func(w *Wind) {
		w.LODThreshold = threshold
	}
}
