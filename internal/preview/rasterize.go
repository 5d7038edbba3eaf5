package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// lightDir is the fixed preview light, normalized at init.
var lightDir = mgl64.Vec3{0.45, 0.65, 0.35}.Normalize()

const (
	ambient = 0.35
	direct  = 0.65
)

// fillTriangle rasterizes one screen-space triangle flat-shaded in the
// given base color with a Lambert term from the world-space normal.
// Screen coordinates carry depth in z, larger meaning closer.
func fillTriangle(fb *frameBuffer, p0, p1, p2 mgl64.Vec3, normal mgl64.Vec3, cr, cg, cb uint8, alpha float64) {
	shade := ambient + math.Abs(normal.Dot(lightDir))*direct

	x0, y0, z0 := p0.X(), p0.Y(), p0.Z()
	x1, y1, z1 := p1.X(), p1.Y(), p1.Z()
	x2, y2, z2 := p2.X(), p2.Y(), p2.Z()

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	fr := clamp255(float64(cr) * shade)
	fg := clamp255(float64(cg) * shade)
	fbl := clamp255(float64(cb) * shade)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			i := zIdx * 4
			if alpha >= 1 {
				fb.Color[i] = fr
				fb.Color[i+1] = fg
				fb.Color[i+2] = fbl
				fb.Color[i+3] = 255
			} else {
				// Blend over whatever is behind, keeping the volume
				// shells translucent so interior markers read through.
				inv := 1 - alpha
				fb.Color[i] = clamp255(float64(fr)*alpha + float64(fb.Color[i])*inv)
				fb.Color[i+1] = clamp255(float64(fg)*alpha + float64(fb.Color[i+1])*inv)
				fb.Color[i+2] = clamp255(float64(fbl)*alpha + float64(fb.Color[i+2])*inv)
				if a := clamp255(255*alpha + float64(fb.Color[i+3])*inv); a > fb.Color[i+3] {
					fb.Color[i+3] = a
				}
			}
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
