package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a non-integrating detection volume. It never moves under
// physics and never receives impulses; bodies scan against it each step.
// A trigger collider reports overlap events but never pushes anything.
type Collider struct {
	ID        string
	Position  rl.Vector3
	Shape     string
	Size      rl.Vector3 // full extents, same convention as Body.Size
	IsTrigger bool

	// Optional event callbacks, invoked with the body that touched the
	// collider. A nil callback is simply not called.
	OnCollisionEnter func(*Body)
	OnCollisionStay  func(*Body)
	OnCollisionExit  func(*Body)
	OnTriggerEnter   func(*Body)
	OnTriggerStay    func(*Body)
	OnTriggerExit    func(*Body)

	UserData any
}

// ColliderOptions configures CreateCollider.
type ColliderOptions struct {
	ID        string
	Position  rl.Vector3
	Shape     string
	Size      *rl.Vector3
	IsTrigger bool

	OnCollisionEnter func(*Body)
	OnCollisionStay  func(*Body)
	OnCollisionExit  func(*Body)
	OnTriggerEnter   func(*Body)
	OnTriggerStay    func(*Body)
	OnTriggerExit    func(*Body)

	UserData any
}

// AABB returns the collider's axis-aligned bounds.
func (c *Collider) AABB() AABB {
	return NewAABBFromCenter(c.Position, c.Size)
}
