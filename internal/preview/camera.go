package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"volumebind/internal/geom"
)

// viewMatrix is a fixed three-quarter view: yaw then a slight downward
// tilt, enough to see volume overlap without a configurable camera.
func viewMatrix() mgl64.Mat3 {
	tilt := mgl64.Rotate3DX(-20 * math.Pi / 180)
	yaw := mgl64.Rotate3DY(35 * math.Pi / 180)
	return tilt.Mul3(yaw)
}

// camera maps world positions to screen pixels: rotate into view space,
// then center and scale the scene bounds into the image with a margin.
type camera struct {
	rot    mgl64.Mat3
	center mgl64.Vec3
	scale  float64
	size   int
}

// newCamera frames the world-space bounds into a size×size image. The
// frame derives from the rotated bounds so the whole scene is always in
// view.
func newCamera(bounds geom.AABB, size, margin int) camera {
	rot := viewMatrix()

	viewBounds := geom.EmptyAABB()
	// Rotate all eight corners; the axis-aligned view box of the world
	// box is the hull of its corners.
	for i := 0; i < 8; i++ {
		c := mgl64.Vec3{bounds.Min.X(), bounds.Min.Y(), bounds.Min.Z()}
		if i&1 != 0 {
			c[0] = bounds.Max.X()
		}
		if i&2 != 0 {
			c[1] = bounds.Max.Y()
		}
		if i&4 != 0 {
			c[2] = bounds.Max.Z()
		}
		viewBounds.Extend(rot.Mul3x1(c))
	}

	span := viewBounds.Size()
	extent := span.X()
	if span.Y() > extent {
		extent = span.Y()
	}
	if extent < 0.001 {
		extent = 0.001
	}

	return camera{
		rot:    rot,
		center: viewBounds.Center(),
		scale:  float64(size-2*margin) / extent,
		size:   size,
	}
}

// project returns the screen position of a world point: x right, y down,
// z depth with larger closer.
func (c camera) project(p mgl64.Vec3) mgl64.Vec3 {
	v := c.rot.Mul3x1(p).Sub(c.center)
	half := float64(c.size) / 2
	return mgl64.Vec3{
		half + v.X()*c.scale,
		half - v.Y()*c.scale,
		v.Z() * c.scale,
	}
}
