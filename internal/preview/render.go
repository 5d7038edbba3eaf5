// Package preview renders a binding run for inspection: volumes as
// translucent shells, assigned vertices as markers, and the blended set
// highlighted. It exists so the distinguished blended-vertex output has a
// visualization even without a host application attached.
package preview

import (
	"image"

	"volumebind/internal/bind"
	"volumebind/internal/geom"
	"volumebind/internal/volume"
)

// Options tunes the preview image.
type Options struct {
	Size        int // final image edge in pixels
	Supersample int // render at Size*Supersample then downsample
}

// volumePalette cycles per catalogued volume.
var volumePalette = [][3]uint8{
	{90, 140, 220},
	{220, 160, 80},
	{120, 200, 120},
	{190, 110, 190},
	{100, 190, 190},
	{210, 210, 110},
}

const volumeAlpha = 0.55

// Render draws one binding run. Unassigned vertices are dim gray,
// single-volume assignments white, blended vertices red.
func Render(vols []volume.Volume, verts []bind.Vertex, res bind.Result, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 512
	}
	ss := opts.Supersample
	if ss <= 0 {
		ss = 1
	}
	renderSize := size * ss

	bounds := geom.EmptyAABB()
	for vi := range vols {
		bounds.Union(vols[vi].Bounds)
	}
	for _, v := range verts {
		bounds.Extend(v.Pos)
	}

	fb := newFrameBuffer(renderSize, renderSize)
	cam := newCamera(bounds, renderSize, 16*ss)

	for vi := range vols {
		color := volumePalette[vi%len(volumePalette)]
		for _, tri := range vols[vi].Triangles {
			normal, ok := tri.Normal()
			if !ok {
				continue
			}
			fillTriangle(fb,
				cam.project(tri.A), cam.project(tri.B), cam.project(tri.C),
				normal, color[0], color[1], color[2], volumeAlpha)
		}
	}

	blended := make(map[int]bool, len(res.Blended))
	for _, id := range res.Blended {
		blended[id] = true
	}

	r := ss
	for _, v := range verts {
		p := cam.project(v.Pos)
		x, y := int(p.X()), int(p.Y())
		switch {
		case blended[v.ID]:
			fb.splat(x, y, r+ss, 230, 60, 60)
		case len(res.Weights[v.ID]) > 0:
			fb.splat(x, y, r, 245, 245, 245)
		default:
			fb.splat(x, y, r, 90, 90, 90)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	if ss > 1 {
		img = downsample(img, size)
	}
	return img
}
