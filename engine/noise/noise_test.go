package noise

import (
	"bytes"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestSynthesizeDeterministic(t *testing.T) {
	a, err := Synthesize(64)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	b, err := Synthesize(64)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(a.Pixels(), b.Pixels()) {
		t.Error("two syntheses with the same size produced different pixels")
	}
}

func TestSynthesizeInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -512} {
		tex, err := Synthesize(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
		if tex != nil {
			t.Errorf("size %d: expected nil texture", size)
		}
	}
}

func TestSynthesizeShape(t *testing.T) {
	tests := []int{1, 7, 64, DefaultSize}
	for _, size := range tests {
		tex, err := Synthesize(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if tex.Size() != size {
			t.Errorf("size %d: Size() = %d", size, tex.Size())
		}
		if len(tex.Pixels()) != size*size {
			t.Errorf("size %d: expected %d pixels, got %d", size, size*size, len(tex.Pixels()))
		}
	}
}

func TestSynthesizeIsCoherentAndVaried(t *testing.T) {
	tex, err := Synthesize(DefaultSize)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	lo, hi := byte(255), byte(0)
	maxStep := 0
	for y := 0; y < tex.Size(); y++ {
		for x := 0; x < tex.Size(); x++ {
			v := tex.At(x, y)
			lo, hi = min(lo, v), max(hi, v)
			if x > 0 {
				d := int(v) - int(tex.At(x-1, y))
				if d < 0 {
					d = -d
				}
				maxStep = max(maxStep, d)
			}
		}
	}
	if hi-lo < 64 {
		t.Errorf("expected a spread of values, got range [%d, %d]", lo, hi)
	}
	if maxStep > 24 {
		t.Errorf("adjacent texels jump by %d, noise is not coherent", maxStep)
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{0, 128},
		{1, 255},
		{-2, 0},
		{2, 255},
		{0.5, 191},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMirroredTilingContinuity(t *testing.T) {
	tex, err := Synthesize(32)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	n := tex.Size()
	for y := 0; y < n; y++ {
		// Stepping one texel past either edge reflects back onto the edge texel.
		if tex.At(-1, y) != tex.At(0, y) {
			t.Errorf("row %d: left seam %d != %d", y, tex.At(-1, y), tex.At(0, y))
		}
		if tex.At(n, y) != tex.At(n-1, y) {
			t.Errorf("row %d: right seam %d != %d", y, tex.At(n, y), tex.At(n-1, y))
		}
		if tex.At(y, -1) != tex.At(y, 0) {
			t.Errorf("column %d: top seam", y)
		}
	}

	// Normalized sampling: u and -u address the same texel, as do 1+u and 1-u.
	for _, u := range []float64{0.01, 0.2, 0.49, 0.9} {
		if a, b := tex.Sample(u, 0.3), tex.Sample(-u, 0.3); a != b {
			t.Errorf("Sample(%v) = %v but Sample(%v) = %v", u, a, -u, b)
		}
		if a, b := tex.Sample(1+u, 0.3), tex.Sample(1-u, 0.3); a != b {
			t.Errorf("Sample(%v) = %v but Sample(%v) = %v", 1+u, a, 1-u, b)
		}
	}
}

func TestTextureBindingDescription(t *testing.T) {
	tex, err := Synthesize(8)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if tex.Format() != wgpu.TextureFormatR8Unorm {
		t.Errorf("expected R8Unorm, got %v", tex.Format())
	}
	s := tex.Sampler()
	if s.AddressModeU != wgpu.AddressModeMirrorRepeat || s.AddressModeV != wgpu.AddressModeMirrorRepeat {
		t.Errorf("expected mirrored repeat on U and V, got %v/%v", s.AddressModeU, s.AddressModeV)
	}
	if s.Label != SamplerLabel {
		t.Errorf("unexpected sampler label %q", s.Label)
	}
	sd := tex.StagingData()
	if sd.Width != 8 || sd.Height != 8 || sd.BytesPerPixel != 1 || len(sd.Pixels) != 64 {
		t.Errorf("unexpected staging data %+v", sd)
	}
}

func TestSynthesizeReusesWorkers(t *testing.T) {
	tests := []struct {
		name       string
		calls      int
		concurrent bool
	}{
		{"sequential", 20, false},
		{"concurrent", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := Synthesize(32)
			if err != nil {
				t.Fatal(err)
			}
			base := runtime.NumGoroutine()

			var wg sync.WaitGroup
			for i := 0; i < tt.calls; i++ {
				run := func() {
					defer wg.Done()
					got, err := Synthesize(32)
					if err != nil {
						t.Error(err)
						return
					}
					if !bytes.Equal(got.Pixels(), want.Pixels()) {
						t.Error("repeated synthesis differs")
					}
				}
				wg.Add(1)
				if tt.concurrent {
					go run()
				} else {
					run()
				}
			}
			wg.Wait()

			// The pool may still grow to one worker per CPU, never per call. Finished callers
			// of the concurrent case can linger briefly after Done.
			slack := runtime.NumCPU() + 2
			if tt.concurrent {
				slack += tt.calls
			}
			if n := runtime.NumGoroutine(); n > base+slack {
				t.Errorf("goroutines grew from %d to %d over %d calls", base, n, tt.calls)
			}
		})
	}
}
