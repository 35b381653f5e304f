package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"starter3d/internal/physics"
)

// Renderer draws a world. Bodies render as solid cubes with outlines,
// solid colliders as translucent blocks, triggers as wireframes only.
type Renderer struct {
	ShowBounds bool
}

func (r *Renderer) Draw(cam rl.Camera3D, w *World) {
	rl.ClearBackground(rl.NewColor(18, 18, 26, 255))

	rl.BeginMode3D(cam)
	rl.DrawGrid(40, 1)

	for _, entry := range w.Entries() {
		switch {
		case entry.Body != nil:
			b := entry.Body
			rl.DrawCubeV(b.Position, b.Size, entry.Color)
			rl.DrawCubeWiresV(b.Position, b.Size, rl.Fade(rl.Black, 0.6))
			if r.ShowBounds {
				drawBounds(b.AABB())
			}

		case entry.Collider != nil:
			c := entry.Collider
			if c.IsTrigger {
				rl.DrawCubeWiresV(c.Position, c.Size, rl.Lime)
			} else {
				rl.DrawCubeV(c.Position, c.Size, rl.Fade(entry.Color, 0.5))
				rl.DrawCubeWiresV(c.Position, c.Size, rl.Fade(rl.Black, 0.6))
			}
			if r.ShowBounds {
				drawBounds(c.AABB())
			}
		}
	}

	rl.EndMode3D()
}

func drawBounds(box physics.AABB) {
	// Slightly inflated so the debug box doesn't z-fight the cube faces.
	size := box.Size()
	inflated := rl.Vector3{X: size.X + 0.02, Y: size.Y + 0.02, Z: size.Z + 0.02}
	rl.DrawCubeWiresV(box.Center(), inflated, rl.Red)
}
