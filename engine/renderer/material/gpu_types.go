package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUStandardParamsSource is the canonical WGSL definition of the StandardParams struct.
// Matches GPUStandardParams layout exactly (32 bytes, uniform aligned).
//
//go:embed assets/standard_params.wgsl
var GPUStandardParamsSource string

// GPUStandardParams is the GPU-aligned uniform for the lit standard material.
// Size: 32 bytes (vec4<f32> + two f32, padded to the 16-byte struct alignment).
type GPUStandardParams struct {
	BaseColor [4]float32 // offset 0: RGBA albedo (16 bytes)
	Metallic  float32    // offset 16
	Roughness float32    // offset 20
	_         [2]float32 // offset 24: struct tail padding
}

// Size returns the size of the GPUStandardParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUStandardParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUStandardParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUStandardParams) Marshal() []byte {
	buf := make([]byte, 32)
	for i, c := range g.BaseColor {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c))
	}
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Metallic))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Roughness))
	return buf
}

// GPUUnlitParamsSource is the canonical WGSL definition of the UnlitParams struct.
// Matches GPUUnlitParams layout exactly (16 bytes).
//
//go:embed assets/unlit_params.wgsl
var GPUUnlitParamsSource string

// GPUUnlitParams is the GPU-aligned uniform for the unlit material.
// Size: 16 bytes (one vec4<f32>).
type GPUUnlitParams struct {
	Color [4]float32 // offset 0: RGBA color written to all fragments (16 bytes)
}

// Size returns the size of the GPUUnlitParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUUnlitParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUnlitParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUUnlitParams) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[3]))
	return buf
}
