package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MinDeltaTime is the smallest scaled step the world will simulate. Smaller
// (or negative) deltas from frame-timing jitter skip the step entirely.
const MinDeltaTime float32 = 1e-4

// World owns every body and collider and advances the simulation. All state
// is mutated only by the host's once-per-frame Update call; there is no
// internal locking.
type World struct {
	Gravity   rl.Vector3
	TimeScale float32
	Debug     bool

	bodies    []*Body
	colliders []*Collider

	// matrix records, per subject body id, which other ids (body or
	// collider) it was touching as of the last completed step. It drives
	// enter/stay/exit classification and is pruned on removal.
	matrix map[string]map[string]bool
}

// Options configures NewWorld. Unset fields keep their defaults: gravity
// (0, -9.8, 0), time scale 1.
type Options struct {
	Gravity   *rl.Vector3
	TimeScale *float32
	Debug     bool
}

func NewWorld(opts Options) *World {
	w := &World{
		Gravity:   rl.Vector3{Y: -9.8},
		TimeScale: 1.0,
		Debug:     opts.Debug,
		matrix:    make(map[string]map[string]bool),
	}
	if opts.Gravity != nil {
		w.Gravity = *opts.Gravity
	}
	if opts.TimeScale != nil {
		w.TimeScale = *opts.TimeScale
	}
	return w
}

// AddBody registers a body, assigning a generated id only when the caller
// did not supply one.
func (w *World) AddBody(b *Body) {
	if b.ID == "" {
		b.ID = fmt.Sprintf("body_%d", len(w.bodies))
	}
	w.bodies = append(w.bodies, b)
}

// CreateBody fills defaults, validates, registers and returns a new body.
// Non-static bodies must end up with positive mass: resolution divides by
// it, so a zero or negative mass is rejected here instead of surfacing as
// NaN positions later.
func (w *World) CreateBody(opts BodyOptions) (*Body, error) {
	b := &Body{
		ID:           opts.ID,
		Position:     opts.Position,
		Velocity:     opts.Velocity,
		Acceleration: opts.Acceleration,
		Mass:         DefaultMass,
		Restitution:  DefaultRestitution,
		Friction:     DefaultFriction,
		Static:       opts.Static,
		Shape:        ShapeBox,
		Size:         rl.Vector3{X: 1, Y: 1, Z: 1},
		UserData:     opts.UserData,
	}
	if opts.Mass != nil {
		b.Mass = *opts.Mass
	}
	if opts.Restitution != nil {
		b.Restitution = *opts.Restitution
	}
	if opts.Friction != nil {
		b.Friction = *opts.Friction
	}
	if opts.Shape != "" {
		b.Shape = opts.Shape
	}
	if opts.Size != nil {
		b.Size = *opts.Size
	}

	if !b.Static && b.Mass <= 0 {
		return nil, fmt.Errorf("physics: body %q: mass must be positive, got %g", b.ID, b.Mass)
	}
	if b.Size.X < 0 || b.Size.Y < 0 || b.Size.Z < 0 {
		return nil, fmt.Errorf("physics: body %q: dimensions must be non-negative", b.ID)
	}

	w.AddBody(b)
	return b, nil
}

// RemoveBody erases the first matching body and purges every collision
// matrix entry keyed by or referencing its id. Without the purge, a reused
// id would resurrect a phantom "was colliding" flag. No-op when absent.
func (w *World) RemoveBody(b *Body) {
	for i, body := range w.bodies {
		if body == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.purgeMatrix(b.ID)
			return
		}
	}
}

// AddCollider registers a collider, assigning a generated id only when the
// caller did not supply one.
func (w *World) AddCollider(c *Collider) {
	if c.ID == "" {
		c.ID = fmt.Sprintf("collider_%d", len(w.colliders))
	}
	w.colliders = append(w.colliders, c)
}

// CreateCollider fills defaults, registers and returns a new collider.
func (w *World) CreateCollider(opts ColliderOptions) *Collider {
	c := &Collider{
		ID:               opts.ID,
		Position:         opts.Position,
		Shape:            ShapeBox,
		Size:             rl.Vector3{X: 1, Y: 1, Z: 1},
		IsTrigger:        opts.IsTrigger,
		OnCollisionEnter: opts.OnCollisionEnter,
		OnCollisionStay:  opts.OnCollisionStay,
		OnCollisionExit:  opts.OnCollisionExit,
		OnTriggerEnter:   opts.OnTriggerEnter,
		OnTriggerStay:    opts.OnTriggerStay,
		OnTriggerExit:    opts.OnTriggerExit,
		UserData:         opts.UserData,
	}
	if opts.Shape != "" {
		c.Shape = opts.Shape
	}
	if opts.Size != nil {
		c.Size = *opts.Size
	}
	w.AddCollider(c)
	return c
}

// RemoveCollider erases the first matching collider and drops its column
// from every matrix row, so a reused collider id starts with a clean
// history. No-op when absent.
func (w *World) RemoveCollider(c *Collider) {
	for i, col := range w.colliders {
		if col == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			w.purgeMatrix(c.ID)
			return
		}
	}
}

// purgeMatrix deletes the row keyed by id and the id's column in every
// remaining row.
func (w *World) purgeMatrix(id string) {
	delete(w.matrix, id)
	for _, row := range w.matrix {
		delete(row, id)
	}
}

// Bodies returns the live body collection in registration order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Colliders returns the live collider collection in registration order.
func (w *World) Colliders() []*Collider {
	return w.colliders
}

// Update advances the simulation by deltaTime seconds of wall-clock time,
// scaled by TimeScale: integration first, then the collision pass. The host
// calls this once per frame.
func (w *World) Update(deltaTime float32) {
	dt := deltaTime * w.TimeScale
	if dt < MinDeltaTime {
		return
	}
	w.integrate(dt)
	w.collide()
}

// integrate advances every non-static body with semi-implicit Euler:
// gravity accumulates into acceleration, velocity updates first, and the
// updated velocity moves the position. Acceleration resets afterwards, so
// forces never persist across frames.
func (w *World) integrate(dt float32) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Acceleration = rl.Vector3Add(b.Acceleration, w.Gravity)
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(b.Acceleration, dt))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
		b.Acceleration = rl.Vector3{}
	}
}

// collide runs naive all-pairs detection for every non-static body against
// all other bodies and all colliders, classifies enter/stay/exit against
// the matrix, resolves, and fires collider callbacks. The collections are
// snapshotted first so a callback that adds or removes objects cannot
// corrupt the pass; its changes take effect next step.
func (w *World) collide() {
	bodies := append([]*Body(nil), w.bodies...)
	colliders := append([]*Collider(nil), w.colliders...)

	for _, body := range bodies {
		if body.Static {
			continue
		}

		for _, other := range bodies {
			if other == body {
				continue
			}
			colliding := CheckCollision(body, other)
			w.setColliding(body.ID, other.ID, colliding)

			if colliding {
				// Enter and stay resolve identically; exit resolves
				// nothing, and bodies carry no callbacks in this model.
				if other.Static {
					resolveStatic(body, other.Position, other.Size, other.Friction)
				} else {
					resolveDynamic(body, other)
				}
			}
		}

		for _, c := range colliders {
			colliding := body.Shape == ShapeBox && c.Shape == ShapeBox &&
				boxesOverlap(body.Position, body.Size, c.Position, c.Size)
			was := w.wasColliding(body.ID, c.ID)
			w.setColliding(body.ID, c.ID, colliding)

			if c.IsTrigger {
				switch {
				case colliding && !was:
					invoke(c.OnTriggerEnter, body)
				case colliding && was:
					invoke(c.OnTriggerStay, body)
				case !colliding && was:
					invoke(c.OnTriggerExit, body)
				}
				continue
			}

			switch {
			case colliding && !was:
				resolveStatic(body, c.Position, c.Size, 0)
				invoke(c.OnCollisionEnter, body)
			case colliding && was:
				resolveStatic(body, c.Position, c.Size, 0)
				invoke(c.OnCollisionStay, body)
			case !colliding && was:
				invoke(c.OnCollisionExit, body)
			}
		}
	}
}

func invoke(cb func(*Body), b *Body) {
	if cb != nil {
		cb(b)
	}
}

func (w *World) wasColliding(subject, other string) bool {
	return w.matrix[subject][other]
}

func (w *World) setColliding(subject, other string, v bool) {
	row, ok := w.matrix[subject]
	if !ok {
		row = make(map[string]bool)
		w.matrix[subject] = row
	}
	row[other] = v
}

// TouchCount reports how many matrix entries the subject id currently holds
// (live or historical within this step), for debug overlays and tests.
func (w *World) TouchCount(subject string) int {
	return len(w.matrix[subject])
}

// Touching reports whether the matrix recorded subject touching other on
// the last completed pass.
func (w *World) Touching(subject, other string) bool {
	return w.wasColliding(subject, other)
}
