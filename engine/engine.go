package engine

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-wind/engine/profiler"
	"github.com/Carmen-Shannon/oxy-wind/engine/scene"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind_plugin"
)

// System is a per-frame update run after the host tick callback. Sweep runs once per active scene and
// Broadcast once per frame after every scene was swept. wind_plugin.Plugin satisfies it.
type System interface {
	Sweep(host wind_plugin.Host) error
	Broadcast() error
}

// engine implements the Engine interface.
type engine struct {
	mu              sync.Mutex
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	err         error

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	systems []System
	scenes  map[int]scene.Scene
}

// Engine drives the frame: on every tick it runs the host tick callback, where the host mutates wind
// parameters and tags objects, then every registered System: Sweep against each active scene and one Broadcast.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Profiler returns the engine profiler, for systems that record phase timings.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called at the start of each tick, before systems run.
	// Use this for host mutation: wind parameter changes and wind tagging.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddSystem appends a system. Systems run in registration order.
	//
	// Parameters:
	//   - s: the system
	AddSystem(s System)

	// AddScene registers a scene at the given key. Scenes are updated in ascending key order.
	//
	// Parameters:
	//   - key: the update order key
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key, or nil.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Step runs a single frame synchronously. A panic inside the frame is recovered and returned as an error.
	//
	// Parameters:
	//   - deltaTime: the frame delta in seconds
	//
	// Returns:
	//   - error: the first system error, or the recovered panic
	Step(deltaTime float32) error

	// Run starts the fixed-rate tick loop and blocks until Quit is called or a frame fails.
	//
	// Returns:
	//   - error: the error that stopped the loop, nil after Quit
	Run() error

	// Quit signals the tick loop to stop. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Run() error {
	e.running.Store(true)
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
	e.wg.Wait()
	e.running.Store(false)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Quit signals the engine goroutines to stop.
func (e *engine) Quit() {
	e.signalQuit(nil)
}

// signalQuit records err, if it is the first, and closes the quit channel once.
func (e *engine) signalQuit(err error) {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.err = err
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed
// or a frame fails.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if err := e.Step(dt); err != nil {
				log.Printf("[Engine] stopping: %v", err)
				e.signalQuit(err)
				return
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) Step(deltaTime float32) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick recovered from panic: %v", r)
			err = fmt.Errorf("tick panic: %v", r)
		}
	}()

	if e.tickCallback != nil {
		e.tickCallback(deltaTime)
	}

	e.mu.Lock()
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	systems := e.systems
	e.mu.Unlock()

	for _, s := range active {
		for _, sys := range systems {
			if err := sys.Sweep(s); err != nil {
				return fmt.Errorf("scene %s: %w", s.Name(), err)
			}
		}
	}
	for _, sys := range systems {
		if err := sys.Broadcast(); err != nil {
			return err
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
	return nil
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if e.running.Load() {
		// Non-blocking send; replace a pending value if the channel is full
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddSystem(s System) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.systems = append(e.systems, s)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
