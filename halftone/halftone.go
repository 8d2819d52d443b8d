// Package halftone turns an RGBA pixel buffer into a white on black dot
// rendering. The source is point sampled on a regular grid and every sample
// is redrawn as a filled circle whose radius is proportional to the
// brightness of the sampled pixel.
package halftone

import (
	"fmt"
	"image"
	"image/color"
	"reflect"
)

// Surface is the drawing target of the transform.
type Surface interface {
	// Bounds returns the drawable area of the surface.
	Bounds() image.Rectangle
	// Fill paints the whole surface with c.
	Fill(c color.Color)
	// FillCircle paints a filled circle centered at (cx, cy).
	// A non positive radius paints nothing.
	FillCircle(cx, cy, r float64, c color.Color)
}

var (
	background = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	foreground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Dot is a single circle of the rendering.
type Dot struct {
	X, Y   int
	Radius float64
}

// Grid returns the sample points of a width x height image in row-major
// order. The grid starts at (0, 0) and does not have to divide the image
// size, the remainder past the last point is left unsampled.
func Grid(width, height, spacing int) []image.Point {
	if width <= 0 || height <= 0 || spacing <= 0 {
		return nil
	}
	points := make([]image.Point, 0, ceilDiv(width, spacing)*ceilDiv(height, spacing))
	for y := 0; y < height; y += spacing {
		for x := 0; x < width; x += spacing {
			points = append(points, image.Point{X: x, Y: y})
		}
	}
	return points
}

// Dots computes the circles drawn by Transform, in drawing order.
func Dots(pix []uint8, width, height int, p Params) ([]Dot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkShape(pix, width, height); err != nil {
		return nil, err
	}

	points := Grid(width, height, p.GridSpacing)
	dots := make([]Dot, 0, len(points))
	for _, pt := range points {
		// The pixel under the grid point stands for the whole cell.
		i := (pt.Y*width + pt.X) * 4
		brightness := Brightness(pix[i], pix[i+1], pix[i+2])
		dots = append(dots, Dot{
			X:      pt.X,
			Y:      pt.Y,
			Radius: p.Radius(brightness),
		})
	}
	return dots, nil
}

// Transform clears dst to black and draws a white circle for every grid
// point of the source buffer. The buffer holds width*height RGBA samples in
// row-major order and dst must have the same size. On error nothing is drawn.
// A nil dst, or a nil pointer implementing Surface, is ErrUnavailableSurface.
func Transform(pix []uint8, width, height int, p Params, dst Surface) error {
	if isNil(dst) {
		return ErrUnavailableSurface
	}
	dots, err := Dots(pix, width, height, p)
	if err != nil {
		return err
	}
	if size := dst.Bounds().Size(); size.X != width || size.Y != height {
		return fmt.Errorf("%w: surface is %dx%d, buffer is %dx%d",
			ErrInvalidBufferShape, size.X, size.Y, width, height)
	}

	dst.Fill(background)

	origin := dst.Bounds().Min
	for _, d := range dots {
		dst.FillCircle(float64(origin.X+d.X), float64(origin.Y+d.Y), d.Radius, foreground)
	}
	return nil
}

// checkShape divides the buffer length instead of multiplying the
// dimensions, which could overflow.
func checkShape(pix []uint8, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBufferShape, width, height)
	}
	n := len(pix) / 4
	if len(pix)%4 != 0 || n%width != 0 || n/width != height {
		return fmt.Errorf("%w: got %d bytes for %dx%d",
			ErrInvalidBufferShape, len(pix), width, height)
	}
	return nil
}

// isNil reports whether the surface is nil, including a nil pointer
// stored in the interface.
func isNil(dst Surface) bool {
	if dst == nil {
		return true
	}
	v := reflect.ValueOf(dst)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
