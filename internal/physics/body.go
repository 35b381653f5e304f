package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape tags. Only boxes participate in collision detection; any other tag
// still integrates but is collision-transparent.
const (
	ShapeBox      = "box"
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
)

// Defaults applied by CreateBody/CreateCollider when an option is left unset.
const (
	DefaultMass        float32 = 1.0
	DefaultRestitution float32 = 0.3
	DefaultFriction    float32 = 0.5
)

// Body is a simulated object. It is plain data; the World moves it.
type Body struct {
	ID string

	Position     rl.Vector3
	Velocity     rl.Vector3
	Acceleration rl.Vector3

	Mass        float32
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = stops immediately
	Static      bool    // static bodies never integrate or receive impulses

	Shape string
	Size  rl.Vector3 // full extents (width/height/depth), not half-extents

	UserData any
}

// BodyOptions configures CreateBody. Pointer fields distinguish "not set"
// from a deliberate zero (restitution 0 is a valid value).
type BodyOptions struct {
	ID           string
	Position     rl.Vector3
	Velocity     rl.Vector3
	Acceleration rl.Vector3
	Mass         *float32
	Restitution  *float32
	Friction     *float32
	Static       bool
	Shape        string
	Size         *rl.Vector3
	UserData     any
}

// ApplyForce adds force/mass to the body's acceleration. Accumulated forces
// are cleared after every step, so continuous forces must be re-applied each
// frame. No-op on static bodies.
func (b *Body) ApplyForce(force rl.Vector3) {
	if b.Static {
		return
	}
	b.Acceleration = rl.Vector3Add(b.Acceleration, rl.Vector3Scale(force, 1/b.Mass))
}

// ApplyImpulse adds impulse/mass to the body's velocity instantly. No-op on
// static bodies.
func (b *Body) ApplyImpulse(impulse rl.Vector3) {
	if b.Static {
		return
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, 1/b.Mass))
}

// AABB returns the body's axis-aligned bounds at its current position.
func (b *Body) AABB() AABB {
	return NewAABBFromCenter(b.Position, b.Size)
}
