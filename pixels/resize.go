package pixels

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize scales the image down to the given width, keeping its aspect
// ratio. Images narrower than width, or a non positive width, are returned
// unchanged.
func Resize(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if width <= 0 || width >= bounds.Dx() {
		return img
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
