package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample reduces a supersampled frame with alpha-premultiplied
// CatmullRom filtering. Filtering straight NRGBA would bleed the
// transparent background's black into volume edges.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := float64(img.Pix[i+3]) / 255.0
		premul.Pix[i] = uint8(float64(img.Pix[i])*a + 0.5)
		premul.Pix[i+1] = uint8(float64(img.Pix[i+1])*a + 0.5)
		premul.Pix[i+2] = uint8(float64(img.Pix[i+2])*a + 0.5)
		premul.Pix[i+3] = img.Pix[i+3]
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		a := float64(dst.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			out.Pix[i] = clamp255(float64(dst.Pix[i]) * inv)
			out.Pix[i+1] = clamp255(float64(dst.Pix[i+1]) * inv)
			out.Pix[i+2] = clamp255(float64(dst.Pix[i+2]) * inv)
		}
		out.Pix[i+3] = dst.Pix[i+3]
	}
	return out
}
