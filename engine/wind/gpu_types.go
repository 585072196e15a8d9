package wind

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUWindUniformSource is the canonical WGSL definition of the WindUniform struct bound at
// @binding(100) of the wind material group. Matches GPUWindUniform layout exactly (80 bytes).
//
//go:embed assets/wind_uniform.wgsl
var GPUWindUniformSource string

// GPUWindUniformSize is the byte size of the WindUniform block, rounded up to its 8-byte
// struct alignment as WGSL requires for uniform buffers.
const GPUWindUniformSize = 80

// GPUWindUniform is the GPU-aligned uniform consumed by the wind vertex shader.
// Field order and types are the wire contract with GPUWindUniformSource; booleans are u32 (0 or 1).
// Size: 80 bytes.
type GPUWindUniform struct {
	Direction            [2]float32 // offset 0: vec2<f32> wind direction (8 bytes)
	Strength             float32    // offset 8
	NoiseScale           float32    // offset 12
	ScrollSpeed          float32    // offset 16
	BendExponent         float32    // offset 20
	RoundExponent        float32    // offset 24
	MicroStrength        float32    // offset 28
	MicroNoiseScale      float32    // offset 32
	MicroScrollSpeed     float32    // offset 36
	SCurveSpeed          float32    // offset 40
	SCurveStrength       float32    // offset 44
	SCurveFrequency      float32    // offset 48
	BopSpeed             float32    // offset 52
	BopStrength          float32    // offset 56
	TwistStrength        float32    // offset 60
	EnableBillboarding   uint32     // offset 64
	EnableEdgeCorrection uint32     // offset 68
	LODThreshold         float32    // offset 72
	_                    float32    // offset 76: struct tail padding
}

// Encode maps Wind onto its GPU layout. Every field is copied as-is; booleans become 1 or 0.
// It never fails and performs no validation.
//
// Parameters:
//   - w: the wind parameters to encode
//
// Returns:
//   - GPUWindUniform: the encoded uniform
func Encode(w Wind) GPUWindUniform {
	return GPUWindUniform{
		Direction:            [2]float32{w.Direction[0], w.Direction[1]},
		Strength:             w.Strength,
		NoiseScale:           w.NoiseScale,
		ScrollSpeed:          w.ScrollSpeed,
		BendExponent:         w.BendExponent,
		RoundExponent:        w.RoundExponent,
		MicroStrength:        w.MicroStrength,
		MicroNoiseScale:      w.MicroNoiseScale,
		MicroScrollSpeed:     w.MicroScrollSpeed,
		SCurveSpeed:          w.SCurveSpeed,
		SCurveStrength:       w.SCurveStrength,
		SCurveFrequency:      w.SCurveFrequency,
		BopSpeed:             w.BopSpeed,
		BopStrength:          w.BopStrength,
		TwistStrength:        w.TwistStrength,
		EnableBillboarding:   boolToU32(w.EnableBillboarding),
		EnableEdgeCorrection: boolToU32(w.EnableEdgeCorrection),
		LODThreshold:         w.LODThreshold,
	}
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Size returns the size of the GPUWindUniform struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUWindUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUWindUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte little-endian buffer ready for GPU upload.
func (g *GPUWindUniform) Marshal() []byte {
	buf := make([]byte, GPUWindUniformSize)
	floats := [...]float32{
		g.Direction[0], g.Direction[1],
		g.Strength, g.NoiseScale, g.ScrollSpeed, g.BendExponent, g.RoundExponent,
		g.MicroStrength, g.MicroNoiseScale, g.MicroScrollSpeed,
		g.SCurveSpeed, g.SCurveStrength, g.SCurveFrequency,
		g.BopSpeed, g.BopStrength, g.TwistStrength,
	}
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(buf[64:68], g.EnableBillboarding)
	binary.LittleEndian.PutUint32(buf[68:72], g.EnableEdgeCorrection)
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(g.LODThreshold))
	return buf
}
