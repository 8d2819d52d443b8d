package draw

import (
	"image"
	"image/color"
	"math"
)

// Circle is an alpha mask of a filled circle. A pixel belongs to the circle
// when its center lies within the radius, so the mask is never anti-aliased.
type Circle struct {
	Cx float64 // center x
	Cy float64 // center y
	R  float64 // radius
}

func (c *Circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *Circle) Bounds() image.Rectangle {
	if c.R <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(c.Cx-c.R)),
		int(math.Floor(c.Cy-c.R)),
		int(math.Ceil(c.Cx+c.R)),
		int(math.Ceil(c.Cy+c.R)),
	)
}

func (c *Circle) At(x, y int) color.Color {
	// Equation of circle, measured from the pixel center.
	dx := float64(x) + 0.5 - c.Cx
	dy := float64(y) + 0.5 - c.Cy

	if c.R > 0 && dx*dx+dy*dy <= c.R*c.R {
		return color.Alpha{255}
	}
	return color.Alpha{0}
}
