// Package noise synthesizes the shared wind noise texture sampled by every wind-affected material.
package noise

import (
	"errors"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-wind/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/ojrac/opensimplex-go"
)

const (
	// DefaultSize is the edge length in texels of the startup wind texture.
	DefaultSize = 512

	// Seed is the fixed noise seed. Changing it changes every synthesized texture.
	Seed int64 = 1

	// SampleScale is the number of noise periods spanned by one texture edge.
	SampleScale = 5.0

	// SamplerLabel is the debug label of the wind noise sampler.
	SamplerLabel = "Wind Noise Sampler"
)

var (
	// pool is shared by every Synthesize call so repeated synthesis reuses the same workers.
	pool     worker.DynamicWorkerPool
	poolOnce sync.Once
	// submitMu serializes task submission, which the pool does not guard.
	submitMu sync.Mutex
)

func sharedPool() worker.DynamicWorkerPool {
	poolOnce.Do(func() {
		n := max(runtime.NumCPU(), 1)
		pool = worker.NewDynamicWorkerPool(n, n, 1*time.Second)
	})
	return pool
}

// ErrInvalidSize is returned by Synthesize for a non-positive texture size.
var ErrInvalidSize = errors.New("noise texture size must be positive")

// Texture is a square single-channel 8-bit noise image plus the sampler configuration it must be bound with.
// It is immutable after Synthesize returns and may be shared by any number of readers.
type Texture struct {
	size    int
	pixels  []byte
	sampler common.SamplerStagingData
}

// Synthesize generates a size×size tileable grayscale noise texture. Each texel (x, y) samples
// seeded 2D gradient noise at (x/size*SampleScale, y/size*SampleScale) and stores
// round((v*0.5+0.5)*255). Output is bit-identical for equal sizes.
//
// Parameters:
//   - size: the edge length in texels
//
// Returns:
//   - *Texture: the synthesized texture
//   - error: ErrInvalidSize if size <= 0
func Synthesize(size int) (*Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	start := time.Now()
	gen := opensimplex.New(Seed)
	pixels := make([]byte, size*size)

	// Each task owns a contiguous band of rows, so no two workers touch the same bytes.
	workers := max(min(runtime.NumCPU(), size), 1)
	band := (size + workers - 1) / workers
	p := sharedPool()

	var wg sync.WaitGroup
	submitMu.Lock()
	for id, y0 := 0, 0; y0 < size; id, y0 = id+1, y0+band {
		y1 := min(y0+band, size)
		wg.Add(1)
		p.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				fillRows(gen, pixels, size, y0, y1)
				return nil, nil
			},
		})
	}
	submitMu.Unlock()
	wg.Wait()

	log.Printf("[Noise] synthesized %dx%d wind texture in %v", size, size, time.Since(start).Round(time.Microsecond))

	return &Texture{
		size:    size,
		pixels:  pixels,
		sampler: common.MirroredSampler(SamplerLabel),
	}, nil
}

func fillRows(gen opensimplex.Noise, pixels []byte, size, y0, y1 int) {
	fs := float64(size)
	for y := y0; y < y1; y++ {
		row := pixels[y*size : (y+1)*size]
		py := float64(y) / fs * SampleScale
		for x := range row {
			px := float64(x) / fs * SampleScale
			row[x] = toByte(gen.Eval2(px, py))
		}
	}
}

// toByte maps a signed noise sample in [-1, 1] onto [0, 255], saturating out-of-range input.
func toByte(v float64) byte {
	b := math.Round((v*0.5 + 0.5) * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return byte(b)
}

// Size returns the texture edge length in texels.
//
// Returns:
//   - int: the edge length
func (t *Texture) Size() int {
	return t.size
}

// Pixels returns the row-major R8 texel data. Callers must not modify it.
//
// Returns:
//   - []byte: the texel data
func (t *Texture) Pixels() []byte {
	return t.pixels
}

// Format returns the GPU texture format of the pixel data.
//
// Returns:
//   - wgpu.TextureFormat: always TextureFormatR8Unorm
func (t *Texture) Format() wgpu.TextureFormat {
	return wgpu.TextureFormatR8Unorm
}

// Sampler returns the sampler configuration the texture must be bound with (mirrored repeat on all axes).
//
// Returns:
//   - common.SamplerStagingData: the sampler configuration
func (t *Texture) Sampler() common.SamplerStagingData {
	return t.sampler
}

// StagingData returns the texture in the form expected by Renderer.InitTextureView.
//
// Returns:
//   - common.TextureStagingData: the upload description
func (t *Texture) StagingData() common.TextureStagingData {
	return common.TextureStagingData{
		Pixels:        t.pixels,
		Width:         uint32(t.size),
		Height:        uint32(t.size),
		Format:        t.Format(),
		BytesPerPixel: 1,
	}
}

// At returns the texel at integer coordinates, addressed with the texture's mirrored-repeat mode.
//
// Parameters:
//   - x, y: texel coordinates, may lie outside the texture
//
// Returns:
//   - byte: the texel value
func (t *Texture) At(x, y int) byte {
	x = common.MirrorIndex(x, t.size)
	y = common.MirrorIndex(y, t.size)
	return t.pixels[y*t.size+x]
}

// Sample returns the nearest texel for normalized coordinates, addressed with mirrored repeat,
// scaled to [0, 1]. It mirrors what the GPU sampler does without filtering.
//
// Parameters:
//   - u, v: normalized texture coordinates, may lie outside [0, 1]
//
// Returns:
//   - float32: the texel value in [0, 1]
func (t *Texture) Sample(u, v float64) float32 {
	x := int(math.Floor(u * float64(t.size)))
	y := int(math.Floor(v * float64(t.size)))
	return float32(t.At(x, y)) / 255
}
