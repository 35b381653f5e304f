package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Right-drag orbits, the wheel zooms.
type OrbitCamera struct {
	Target    rl.Vector3
	Yaw       float32 // degrees around Y
	Pitch     float32 // degrees above horizon
	Distance  float32
	LookSpeed float32
	ZoomSpeed float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:    target,
		Yaw:       -45.0,
		Pitch:     25.0,
		Distance:  18.0,
		LookSpeed: 0.25,
		ZoomSpeed: 1.2,
	}
}

// Orbit applies a mouse drag delta.
func (c *OrbitCamera) Orbit(delta rl.Vector2) {
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch += delta.Y * c.LookSpeed
	if c.Pitch > 85 {
		c.Pitch = 85
	}
	if c.Pitch < -10 {
		c.Pitch = -10
	}
}

// Zoom applies wheel movement.
func (c *OrbitCamera) Zoom(wheel float32) {
	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < 3 {
		c.Distance = 3
	}
	if c.Distance > 60 {
		c.Distance = 60
	}
}

// Position returns the camera's world position for the current orbit.
func (c *OrbitCamera) Position() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	horizontal := c.Distance * math32.Cos(pitch)
	return rl.Vector3{
		X: c.Target.X + horizontal*math32.Cos(yaw),
		Y: c.Target.Y + c.Distance*math32.Sin(pitch),
		Z: c.Target.Z + horizontal*math32.Sin(yaw),
	}
}

// Forward returns the normalized look direction.
func (c *OrbitCamera) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
}

// Raylib builds the rl.Camera3D for rendering.
func (c *OrbitCamera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}
