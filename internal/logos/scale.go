package logos

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales src so it fits inside a size×size box while keeping its aspect ratio.
// Images are scaled up as well as down.
func Fit(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || size <= 0 {
		return src
	}
	if w == size && h == size {
		return src
	}

	dw, dh := size, size
	if w > h {
		dh = max(1, (h*size+w/2)/w)
	} else if h > w {
		dw = max(1, (w*size+h/2)/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
