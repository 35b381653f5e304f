package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest object a ray intersected. Exactly one of
// Body and Collider is non-nil.
type RaycastHit struct {
	Body     *Body
	Collider *Collider
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast intersects a ray with every body and collider AABB and returns
// the closest hit within maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	for _, b := range w.bodies {
		if info, ok := raycastAABB(origin, direction, b.AABB(), maxDistance); ok {
			if info.Distance < closest.Distance {
				closest = info
				closest.Body = b
				hit = true
			}
		}
	}
	for _, c := range w.colliders {
		if info, ok := raycastAABB(origin, direction, c.AABB(), maxDistance); ok {
			if info.Distance < closest.Distance {
				closest = info
				closest.Collider = c
				closest.Body = nil
				hit = true
			}
		}
	}

	return closest, hit
}

// raycastAABB is a slab test against one box.
func raycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	update := func(o, d, lo, hi float32) bool {
		if d != 0 {
			t1 := (lo - o) / d
			t2 := (hi - o) / d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
			return tmin <= tmax
		}
		return o >= lo && o <= hi
	}

	if !update(origin.X, direction.X, box.Min.X, box.Max.X) {
		return RaycastHit{}, false
	}
	if !update(origin.Y, direction.Y, box.Min.Y, box.Max.Y) {
		return RaycastHit{}, false
	}
	if !update(origin.Z, direction.Z, box.Min.Z, box.Max.Z) {
		return RaycastHit{}, false
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}
	t := tmin
	if t < 0 {
		t = 0 // origin inside the box
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{
		Point:    point,
		Normal:   faceNormal(point, box),
		Distance: t,
	}, true
}

// faceNormal picks the axis normal of the box face nearest the hit point.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	best := point.X - box.Min.X
	normal := rl.Vector3{X: -1}

	if d := box.Max.X - point.X; d < best {
		best = d
		normal = rl.Vector3{X: 1}
	}
	if d := point.Y - box.Min.Y; d < best {
		best = d
		normal = rl.Vector3{Y: -1}
	}
	if d := box.Max.Y - point.Y; d < best {
		best = d
		normal = rl.Vector3{Y: 1}
	}
	if d := point.Z - box.Min.Z; d < best {
		best = d
		normal = rl.Vector3{Z: -1}
	}
	if d := box.Max.Z - point.Z; d < best {
		normal = rl.Vector3{Z: 1}
	}
	return normal
}
