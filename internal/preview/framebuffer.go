package preview

import "math"

// frameBuffer is the render target as flat slices for cache locality.
type frameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, larger is closer, initialized to -inf
}

func newFrameBuffer(w, h int) *frameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &frameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// splat stamps a solid square of radius r around (x, y), bypassing the
// z-buffer. Vertex markers use it: the vertices of interest sit inside
// the volumes, so depth-tested markers would never be visible.
func (fb *frameBuffer) splat(x, y, r int, cr, cg, cb uint8) {
	for sy := y - r; sy <= y+r; sy++ {
		if sy < 0 || sy >= fb.Height {
			continue
		}
		for sx := x - r; sx <= x+r; sx++ {
			if sx < 0 || sx >= fb.Width {
				continue
			}
			i := (sy*fb.Width + sx) * 4
			fb.Color[i] = cr
			fb.Color[i+1] = cg
			fb.Color[i+2] = cb
			fb.Color[i+3] = 255
		}
	}
}
