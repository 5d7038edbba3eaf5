package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateEps is the shortest plane-normal length we accept before
// declaring a triangle degenerate (colinear or coincident vertices).
const degenerateEps = 1e-8

// Triangle is an ordered triple of vertex positions. The winding A→B→C
// defines the plane normal direction.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// Normal returns the unit plane normal via the cross product of the two
// edges out of A. ok is false for degenerate triangles, which cannot be
// intersected and must be skipped by callers.
func (t Triangle) Normal() (mgl64.Vec3, bool) {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	l := n.Len()
	if l < degenerateEps {
		return mgl64.Vec3{}, false
	}
	return n.Mul(1 / l), true
}

// PlaneDist returns the signed distance of p from the triangle's plane,
// given the triangle's unit normal.
func (t Triangle) PlaneDist(normal, p mgl64.Vec3) float64 {
	return normal.Dot(p) - normal.Dot(t.A)
}

// ContainsPoint reports whether p, assumed to lie on the triangle's plane,
// falls within the triangle. Each edge spans a half-space plane with normal
// edge × triangleNormal; p is inside only if it sits on the non-positive
// side of all three. A point exactly on an edge counts as inside.
func (t Triangle) ContainsPoint(normal, p mgl64.Vec3) bool {
	if t.B.Sub(t.A).Cross(normal).Dot(p.Sub(t.A)) > 0 {
		return false
	}
	if t.C.Sub(t.B).Cross(normal).Dot(p.Sub(t.B)) > 0 {
		return false
	}
	if t.A.Sub(t.C).Cross(normal).Dot(p.Sub(t.C)) > 0 {
		return false
	}
	return true
}

// SegmentCrosses reports whether the directed segment from→to passes
// through the triangle. normal must be the triangle's unit normal.
func (t Triangle) SegmentCrosses(normal, from, to mgl64.Vec3) bool {
	df := t.PlaneDist(normal, from)
	dt := t.PlaneDist(normal, to)

	// Both endpoints strictly on the same side: the plane is never reached.
	if df > 0 && dt > 0 {
		return false
	}
	if df < 0 && dt < 0 {
		return false
	}

	// Interpolate along the segment to the plane. n·(to-from) equals
	// dt-df; zero means the segment runs parallel within the plane and
	// has no single crossing point.
	denom := dt - df
	if denom == 0 {
		return false
	}
	s := -df / denom
	p := from.Add(to.Sub(from).Mul(s))

	return t.ContainsPoint(normal, p)
}
