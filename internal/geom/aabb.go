package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyAABB returns an inverted box that any Extend call will overwrite.
func EmptyAABB() AABB {
	return AABB{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// Extend grows the box to include p.
func (a *AABB) Extend(p mgl64.Vec3) {
	for k := 0; k < 3; k++ {
		if p[k] < a.Min[k] {
			a.Min[k] = p[k]
		}
		if p[k] > a.Max[k] {
			a.Max[k] = p[k]
		}
	}
}

// Union grows the box to include the whole of other.
func (a *AABB) Union(other AABB) {
	a.Extend(other.Min)
	a.Extend(other.Max)
}

// Contains checks if a point is inside the AABB. Bounds are inclusive:
// a point exactly on a face is kept as a candidate for the exact test.
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}
