package profiler

import (
	"log"
	"runtime"
	"time"
)

// Phase names recorded by the wind frame.
const (
	PhaseSweep     = "sweep"
	PhaseBroadcast = "broadcast"
)

// Profiler tracks tick rate, per-phase timings, promotion counts and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	phases    map[string]time.Duration
	order     []string
	promoted  int
	materials int
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		phases:         make(map[string]time.Duration),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// ProfilerBuilderOption is a functional option applied to a Profiler during construction.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often the profiler logs. Non-positive values are ignored.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the interval option
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// Phase adds d to the accumulated time of the named phase for the current interval.
//
// Parameters:
//   - name: the phase name
//   - d: the time spent in the phase
func (p *Profiler) Phase(name string, d time.Duration) {
	if _, ok := p.phases[name]; !ok {
		p.order = append(p.order, name)
	}
	p.phases[name] += d
}

// Promoted records n objects promoted this tick and the registry size after the sweep.
//
// Parameters:
//   - n: objects promoted this tick
//   - materials: number of wind-affected materials registered
func (p *Profiler) Promoted(n, materials int) {
	p.promoted += n
	p.materials = materials
}

// PhaseTotal returns the time accumulated for a phase since the last log.
//
// Parameters:
//   - name: the phase name
//
// Returns:
//   - time.Duration: the accumulated time
func (p *Profiler) PhaseTotal(name string) time.Duration {
	return p.phases[name]
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: tick rate, average time per phase, promotions, heap usage, allocation rate and GC pauses.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		pause := p.memStats.PauseNs[i%256] / 1000
		if pause > maxPauseUs {
			maxPauseUs = pause
		}
	}

	phaseStats := ""
	for _, name := range p.order {
		avg := p.phases[name] / time.Duration(p.frameCount)
		phaseStats += " | " + name + ": " + avg.String()
	}

	log.Printf("[Profiler] TPS: %.2f%s | Promoted: %d | Materials: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs)",
		tps, phaseStats, p.promoted, p.materials, allocMB, allocRateMB, gcCount, maxPauseUs)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.promoted = 0
	for name := range p.phases {
		p.phases[name] = 0
	}
	return true
}
