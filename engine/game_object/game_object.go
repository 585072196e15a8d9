package game_object

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
)

// WindState is the wind tagging state of an object. It only ever moves forward:
// WindStateNone -> WindStateEligible -> WindStatePromoted, or straight to WindStatePromoted
// for spawned instances that already carry a wind-affected material.
type WindState int32

const (
	// WindStateNone marks an object the wind system ignores.
	WindStateNone WindState = iota
	// WindStateEligible marks an object waiting for the next promotion sweep.
	WindStateEligible
	// WindStatePromoted marks an object drawn with a wind-affected material.
	WindStatePromoted
)

func (s WindState) String() string {
	switch s {
	case WindStateNone:
		return "none"
	case WindStateEligible:
		return "eligible"
	case WindStatePromoted:
		return "promoted"
	}
	return fmt.Sprintf("WindState(%d)", int32(s))
}

type gameObject struct {
	id        uint64
	enabled   atomic.Bool
	mesh      model.Mesh
	material  material.Material
	windState atomic.Int32

	// onEligible is installed by the owning Scene so tagging enqueues the object for the next sweep.
	onEligible func(GameObject)

	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

// GameObject defines the interface for a renderable scene entity: a mesh drawn with a material
// at a transform, plus the wind tagging state the promotion sweep keys on.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mesh returns the Mesh drawn by this object, or nil if not set.
	//
	// Returns:
	//   - model.Mesh: the mesh or nil
	Mesh() model.Mesh

	// Material returns the Material this object is drawn with, or nil if not set.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Transform returns the object's position, rotation (Euler angles in radians) and scale.
	//
	// Returns:
	//   - pos, rot, scale: the transform components
	Transform() (pos, rot, scale [3]float32)

	// WindState returns the object's wind tagging state.
	//
	// Returns:
	//   - WindState: the current state
	WindState() WindState

	// MarkWindAffected tags the object for promotion on the next sweep. Tagging an object that is
	// already eligible or promoted does nothing.
	//
	// Returns:
	//   - bool: true if the object moved from WindStateNone to WindStateEligible
	MarkWindAffected() bool

	// MarkPromoted moves the object to WindStatePromoted. Promoting an object twice is an
	// invariant violation and panics.
	MarkPromoted()

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetMesh assigns the Mesh drawn by this object.
	//
	// Parameters:
	//   - m: the Mesh to associate
	SetMesh(m model.Mesh)

	// SetMaterial rebinds the material this object is drawn with.
	//
	// Parameters:
	//   - m: the Material to associate
	SetMaterial(m material.Material)

	// SetPosition sets the object's position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the object's rotation.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// SetScale sets the object's scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetEligibleListener installs the callback run when the object becomes eligible.
	// Scenes use it to feed their pending promotion queue. Pass nil to detach.
	//
	// Parameters:
	//   - fn: the callback, or nil
	SetEligibleListener(fn func(GameObject))
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects are enabled with unit scale unless an option says otherwise.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Mesh() model.Mesh {
	return g.mesh
}

func (g *gameObject) Material() material.Material {
	return g.material
}

func (g *gameObject) Transform() (pos, rot, scale [3]float32) {
	return g.position, g.rotation, g.scale
}

func (g *gameObject) WindState() WindState {
	return WindState(g.windState.Load())
}

func (g *gameObject) MarkWindAffected() bool {
	if !g.windState.CompareAndSwap(int32(WindStateNone), int32(WindStateEligible)) {
		return false
	}
	if g.onEligible != nil {
		g.onEligible(g)
	}
	return true
}

func (g *gameObject) MarkPromoted() {
	if prev := WindState(g.windState.Swap(int32(WindStatePromoted))); prev == WindStatePromoted {
		panic(fmt.Sprintf("game_object: object %d promoted twice", g.id))
	}
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetMesh(m model.Mesh) {
	g.mesh = m
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.material = m
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetEligibleListener(fn func(GameObject)) {
	g.onEligible = fn
}
