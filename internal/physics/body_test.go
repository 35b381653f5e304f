package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func f32(v float32) *float32 { return &v }

func vec(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

func vecp(x, y, z float32) *rl.Vector3 {
	v := vec(x, y, z)
	return &v
}

func zeroGravityWorld() *World {
	g := rl.Vector3{}
	return NewWorld(Options{Gravity: &g})
}

func TestCreateBodyDefaults(t *testing.T) {
	w := NewWorld(Options{})
	b, err := w.CreateBody(BodyOptions{})
	if err != nil {
		t.Fatalf("CreateBody: %v", err)
	}

	if b.Mass != 1.0 {
		t.Errorf("default mass = %v, want 1", b.Mass)
	}
	if b.Restitution != 0.3 {
		t.Errorf("default restitution = %v, want 0.3", b.Restitution)
	}
	if b.Friction != 0.5 {
		t.Errorf("default friction = %v, want 0.5", b.Friction)
	}
	if b.Shape != ShapeBox {
		t.Errorf("default shape = %q, want %q", b.Shape, ShapeBox)
	}
	if b.Size != vec(1, 1, 1) {
		t.Errorf("default size = %v, want (1,1,1)", b.Size)
	}
	if b.Static {
		t.Error("default body should not be static")
	}
}

func TestCreateBodyZeroRestitutionIsKept(t *testing.T) {
	w := NewWorld(Options{})
	b, err := w.CreateBody(BodyOptions{Restitution: f32(0)})
	if err != nil {
		t.Fatalf("CreateBody: %v", err)
	}
	if b.Restitution != 0 {
		t.Errorf("restitution = %v, want explicit 0", b.Restitution)
	}
}

func TestCreateBodyRejectsNonPositiveMass(t *testing.T) {
	w := NewWorld(Options{})
	if _, err := w.CreateBody(BodyOptions{Mass: f32(0)}); err == nil {
		t.Error("expected error for zero mass")
	}
	if _, err := w.CreateBody(BodyOptions{Mass: f32(-1)}); err == nil {
		t.Error("expected error for negative mass")
	}
	// Static bodies never divide by mass, so zero mass is fine there.
	if _, err := w.CreateBody(BodyOptions{Mass: f32(0), Static: true}); err != nil {
		t.Errorf("static body with zero mass: %v", err)
	}
}

func TestCreateBodyRejectsNegativeDimensions(t *testing.T) {
	w := NewWorld(Options{})
	if _, err := w.CreateBody(BodyOptions{Size: vecp(-1, 1, 1)}); err == nil {
		t.Error("expected error for negative dimensions")
	}
}

func TestGeneratedIDs(t *testing.T) {
	w := NewWorld(Options{})
	a := &Body{}
	b := &Body{}
	named := &Body{ID: "player"}
	w.AddBody(a)
	w.AddBody(b)
	w.AddBody(named)

	if a.ID != "body_0" || b.ID != "body_1" {
		t.Errorf("generated ids = %q, %q, want body_0, body_1", a.ID, b.ID)
	}
	if named.ID != "player" {
		t.Errorf("caller-supplied id overwritten: %q", named.ID)
	}

	c := w.CreateCollider(ColliderOptions{})
	if c.ID != "collider_0" {
		t.Errorf("collider id = %q, want collider_0", c.ID)
	}
}

func TestApplyForce(t *testing.T) {
	w := zeroGravityWorld()
	b, err := w.CreateBody(BodyOptions{Mass: f32(2)})
	if err != nil {
		t.Fatalf("CreateBody: %v", err)
	}

	b.ApplyForce(vec(4, 0, 0))
	w.Update(1.0)

	// a = F/m = 2, so after one second v = 2 and p = 2 (velocity first).
	if b.Velocity.X != 2 {
		t.Errorf("velocity.x = %v, want 2", b.Velocity.X)
	}
	if b.Position.X != 2 {
		t.Errorf("position.x = %v, want 2", b.Position.X)
	}

	// Force does not persist into the next step.
	w.Update(1.0)
	if b.Velocity.X != 2 {
		t.Errorf("velocity.x after second step = %v, want 2", b.Velocity.X)
	}
}

func TestApplyImpulse(t *testing.T) {
	w := zeroGravityWorld()
	b, err := w.CreateBody(BodyOptions{Mass: f32(4)})
	if err != nil {
		t.Fatalf("CreateBody: %v", err)
	}

	b.ApplyImpulse(vec(8, 0, 0))
	if b.Velocity.X != 2 {
		t.Errorf("velocity.x = %v, want impulse/mass = 2", b.Velocity.X)
	}
}

func TestStaticBodyIgnoresForceAndImpulse(t *testing.T) {
	w := zeroGravityWorld()
	b, err := w.CreateBody(BodyOptions{Static: true})
	if err != nil {
		t.Fatalf("CreateBody: %v", err)
	}

	b.ApplyForce(vec(100, 100, 100))
	b.ApplyImpulse(vec(100, 100, 100))

	if b.Velocity != (rl.Vector3{}) || b.Acceleration != (rl.Vector3{}) {
		t.Error("static body picked up velocity or acceleration")
	}
}
