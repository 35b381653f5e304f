package camera

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPositionStaysOnOrbitSphere(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3})

	for _, yaw := range []float32{-45, 0, 90, 200} {
		c.Yaw = yaw
		p := c.Position()
		d := rl.Vector3Length(rl.Vector3Subtract(p, c.Target))
		if math32.Abs(d-c.Distance) > 1e-3 {
			t.Errorf("yaw %v: distance to target = %v, want %v", yaw, d, c.Distance)
		}
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Orbit(rl.Vector2{Y: 10000})
	if c.Pitch != 85 {
		t.Errorf("pitch = %v, want clamp at 85", c.Pitch)
	}
	c.Orbit(rl.Vector2{Y: -10000})
	if c.Pitch != -10 {
		t.Errorf("pitch = %v, want clamp at -10", c.Pitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(1000)
	if c.Distance != 3 {
		t.Errorf("distance = %v, want 3", c.Distance)
	}
	c.Zoom(-1000)
	if c.Distance != 60 {
		t.Errorf("distance = %v, want 60", c.Distance)
	}
}

func TestForwardPointsAtTarget(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw = 0
	c.Pitch = 0

	f := c.Forward()
	if math32.Abs(rl.Vector3Length(f)-1) > 1e-5 {
		t.Errorf("forward not normalized: %v", f)
	}
	// Zero pitch, zero yaw places the camera on +x looking back at the
	// origin.
	if math32.Abs(f.X+1) > 1e-5 || math32.Abs(f.Y) > 1e-5 || math32.Abs(f.Z) > 1e-5 {
		t.Errorf("forward = %v, want -x", f)
	}
}
