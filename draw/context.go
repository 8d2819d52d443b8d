package draw

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Context is an anti-aliased surface backed by a gg drawing context.
type Context struct {
	dc *gg.Context
}

// NewContext creates a transparent anti-aliased surface of the given size.
func NewContext(width, height int) *Context {
	return &Context{dc: gg.NewContext(width, height)}
}

func (s *Context) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

// Fill clears the whole context with c.
func (s *Context) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// FillCircle fills a circle path. Pixels on the rim get partial coverage.
func (s *Context) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(c)
	s.dc.Fill()
}

// Image returns the rendered image.
func (s *Context) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the context content to w in PNG format.
func (s *Context) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the context content to a PNG file.
func (s *Context) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
