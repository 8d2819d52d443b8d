// Package pixels converts between decoded images and the row-major RGBA
// pixel buffers consumed by the halftone transform.
package pixels

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidShape is returned when a buffer does not hold width*height RGBA samples.
var ErrInvalidShape = errors.New("pixel buffer does not match its dimensions")

// ImgToPix converts an image to pixel data. The buffer is row-major, starts
// at the image's top-left corner and keeps the non-premultiplied alpha.
func ImgToPix(img image.Image) []uint8 {
	bounds := img.Bounds()
	pixels := make([]uint8, 0, bounds.Dx()*bounds.Dy()*4)

	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			pixels = append(pixels, src.Pix[i:i+bounds.Dx()*4]...)
		}
		return pixels
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	return pixels
}

// PixToImage wraps the pixel data into an image of the given size.
// The image shares its memory with the buffer.
func PixToImage(pixels []uint8, width, height int) (*image.NRGBA, error) {
	if err := CheckShape(pixels, width, height); err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// CheckShape reports whether the buffer holds exactly width*height RGBA samples.
func CheckShape(pixels []uint8, width, height int) error {
	n := len(pixels) / 4
	if width <= 0 || height <= 0 || len(pixels)%4 != 0 || n%width != 0 || n/width != height {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidShape, len(pixels), width, height)
	}
	return nil
}
