// Package draw provides the drawing surfaces the halftone transform paints
// onto: an exact, aliased surface backed by an NRGBA image and an
// anti-aliased one backed by a gg context.
package draw

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"io"
)

// OutputName is the file name used when a rendering is saved or downloaded.
const OutputName = "circle-art.png"

// Image is a surface drawing into an NRGBA image without anti-aliasing.
type Image struct {
	img *image.NRGBA
}

// NewImage creates a transparent surface of the given size.
func NewImage(width, height int) *Image {
	return &Image{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// NewImageFrom creates a surface drawing into an existing image.
func NewImageFrom(img *image.NRGBA) *Image {
	return &Image{img: img}
}

func (s *Image) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Fill replaces every pixel of the surface with c.
func (s *Image) Fill(c color.Color) {
	imagedraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, imagedraw.Src)
}

// FillCircle composites a filled circle over the surface, clipped to its bounds.
func (s *Image) FillCircle(cx, cy, r float64, c color.Color) {
	mask := &Circle{Cx: cx, Cy: cy, R: r}
	rect := mask.Bounds().Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	imagedraw.DrawMask(s.img, rect, image.NewUniform(c), image.Point{}, mask, rect.Min, imagedraw.Over)
}

// Image returns the underlying image.
func (s *Image) Image() *image.NRGBA {
	return s.img
}

// Pix returns the surface content as a row-major RGBA buffer.
// The returned slice aliases the image memory when the rows are contiguous.
func (s *Image) Pix() []uint8 {
	b := s.img.Bounds()
	rowLen := b.Dx() * 4
	if s.img.Stride == rowLen {
		return s.img.Pix[:rowLen*b.Dy()]
	}
	pix := make([]uint8, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := s.img.PixOffset(b.Min.X, y)
		pix = append(pix, s.img.Pix[i:i+rowLen]...)
	}
	return pix
}

// EncodePNG writes the surface to w in PNG format.
func (s *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
