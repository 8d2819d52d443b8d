package halftone

import "fmt"

// Reference values of the circle art rendering.
const (
	DefaultDotDiameter = 4
	DefaultGridSpacing = 5
)

// Params holds the halftone sampling density and maximum dot size.
type Params struct {
	DotDiameter int // diameter of a dot sampled at full brightness
	GridSpacing int // distance in pixels between two sample points
}

// DefaultParams returns the reference parameters.
func DefaultParams() Params {
	return Params{
		DotDiameter: DefaultDotDiameter,
		GridSpacing: DefaultGridSpacing,
	}
}

// Validate checks that both parameters are positive.
// A spacing smaller than the diameter is allowed, the dots will overlap.
func (p Params) Validate() error {
	if p.DotDiameter <= 0 {
		return fmt.Errorf("%w: dot diameter %d", ErrInvalidParams, p.DotDiameter)
	}
	if p.GridSpacing <= 0 {
		return fmt.Errorf("%w: grid spacing %d", ErrInvalidParams, p.GridSpacing)
	}
	return nil
}

// MaxRadius is the radius of a dot sampled on a pure white pixel.
func (p Params) MaxRadius() float64 {
	return float64(p.DotDiameter) / 2
}

// Radius maps a brightness value in the [0, 255] range linearly to a radius,
// pure black giving 0 and pure white giving MaxRadius.
func (p Params) Radius(brightness float64) float64 {
	return (clamp(brightness, 0, 255) / 255) * p.MaxRadius()
}

// Brightness returns the unweighted mean of the color channels.
func Brightness(r, g, b uint8) float64 {
	return float64(int(r)+int(g)+int(b)) / 3
}
