package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CheckCollision reports whether two bodies overlap. Only box shapes
// collide; any other shape tag is collision-transparent.
func CheckCollision(a, b *Body) bool {
	if a.Shape != ShapeBox || b.Shape != ShapeBox {
		return false
	}
	return boxesOverlap(a.Position, a.Size, b.Position, b.Size)
}

// boxesOverlap is the center-distance-vs-summed-extents AABB test: the
// doubled center distance must be under the summed full extents on all
// three axes.
func boxesOverlap(posA, sizeA, posB, sizeB rl.Vector3) bool {
	return math32.Abs(posA.X-posB.X)*2 < sizeA.X+sizeB.X &&
		math32.Abs(posA.Y-posB.Y)*2 < sizeA.Y+sizeB.Y &&
		math32.Abs(posA.Z-posB.Z)*2 < sizeA.Z+sizeB.Z
}

// penetration returns the per-axis overlap depth between two boxes assumed
// to be overlapping: half the summed extents minus the center distance,
// per axis.
func penetration(posA, sizeA, posB, sizeB rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: (sizeA.X+sizeB.X)/2 - math32.Abs(posA.X-posB.X),
		Y: (sizeA.Y+sizeB.Y)/2 - math32.Abs(posA.Y-posB.Y),
		Z: (sizeA.Z+sizeB.Z)/2 - math32.Abs(posA.Z-posB.Z),
	}
}

// resolveStatic pushes a dynamic body out of a non-moving counterpart (a
// static body or a solid collider) along the single axis of least
// penetration, reflects the body's velocity on that axis scaled by its
// restitution, and damps horizontal velocity when both sides have friction.
// Ties between axes go to x first, then y, then z.
func resolveStatic(body *Body, otherPos, otherSize rl.Vector3, otherFriction float32) {
	overlap := penetration(body.Position, body.Size, otherPos, otherSize)

	switch {
	case overlap.X <= overlap.Y && overlap.X <= overlap.Z:
		if body.Position.X >= otherPos.X {
			body.Position.X += overlap.X
		} else {
			body.Position.X -= overlap.X
		}
		body.Velocity.X = -body.Velocity.X * body.Restitution
	case overlap.Y <= overlap.Z:
		if body.Position.Y >= otherPos.Y {
			body.Position.Y += overlap.Y
		} else {
			body.Position.Y -= overlap.Y
		}
		body.Velocity.Y = -body.Velocity.Y * body.Restitution
	default:
		if body.Position.Z >= otherPos.Z {
			body.Position.Z += overlap.Z
		} else {
			body.Position.Z -= overlap.Z
		}
		body.Velocity.Z = -body.Velocity.Z * body.Restitution
	}

	// Friction acts on the horizontal plane only, regardless of which axis
	// the collision resolved on.
	if body.Friction > 0 && otherFriction > 0 {
		damp := 1 - body.Friction*otherFriction
		body.Velocity.X *= damp
		body.Velocity.Z *= damp
	}
}

// resolveDynamic applies an impulse to two overlapping dynamic bodies and
// separates them along the axis of least penetration, half each.
func resolveDynamic(a, b *Body) {
	relVel := rl.Vector3Subtract(a.Velocity, b.Velocity)

	// Contact normal points from b toward a, so an approach shows up as a
	// negative velocity along it.
	normal := rl.Vector3Subtract(a.Position, b.Position)
	length := rl.Vector3Length(normal)
	if length > 0 {
		normal = rl.Vector3Scale(normal, 1/length)
	} else {
		// Coincident centers give no direction; fall back to +X so the
		// impulse stays finite.
		normal = rl.Vector3{X: 1}
	}

	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal > 0 {
		// Already separating along the normal. No impulse, and no
		// positional separation either: overlapping-but-separating bodies
		// are left alone until they approach again.
		return
	}

	e := math32.Min(a.Restitution, b.Restitution)
	j := -(1 + e) * velAlongNormal
	j /= 1/a.Mass + 1/b.Mass

	impulse := rl.Vector3Scale(normal, j)
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(impulse, 1/a.Mass))
	b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(impulse, 1/b.Mass))

	separateBodies(a, b)
}

// separateBodies moves each body half the least-axis penetration away from
// the other, each in the direction of its own center. Same axis tie rule as
// resolveStatic.
func separateBodies(a, b *Body) {
	overlap := penetration(a.Position, a.Size, b.Position, b.Size)

	switch {
	case overlap.X <= overlap.Y && overlap.X <= overlap.Z:
		half := overlap.X / 2
		if a.Position.X >= b.Position.X {
			a.Position.X += half
			b.Position.X -= half
		} else {
			a.Position.X -= half
			b.Position.X += half
		}
	case overlap.Y <= overlap.Z:
		half := overlap.Y / 2
		if a.Position.Y >= b.Position.Y {
			a.Position.Y += half
			b.Position.Y -= half
		} else {
			a.Position.Y -= half
			b.Position.Y += half
		}
	default:
		half := overlap.Z / 2
		if a.Position.Z >= b.Position.Z {
			a.Position.Z += half
			b.Position.Z -= half
		} else {
			a.Position.Z -= half
			b.Position.Z += half
		}
	}
}
