package halftone_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/esimov/circle-art/draw"
	"github.com/esimov/circle-art/halftone"
)

var (
	_ halftone.Surface = (*draw.Image)(nil)
	_ halftone.Surface = (*draw.Context)(nil)
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func gradient(width, height int) []uint8 {
	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			v := uint8((x*255/width + y*255/height) / 2)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v/2, 255-v, 255
		}
	}
	return pix
}

func TestBlackStaysBlack(t *testing.T) {
	const width, height = 23, 17
	dst := draw.NewImage(width, height)
	if err := halftone.Transform(make([]uint8, width*height*4), width, height, halftone.DefaultParams(), dst); err != nil {
		t.Fatal(err)
	}
	img := dst.Image()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if c := img.NRGBAAt(x, y); c != black {
				t.Fatalf("pixel (%d, %d) is %v, want black", x, y, c)
			}
		}
	}
}

func TestWhiteDots(t *testing.T) {
	const width, height = 10, 10
	pix := make([]uint8, width*height*4)
	for i := range pix {
		pix[i] = 0xff
	}
	dst := draw.NewImage(width, height)
	if err := halftone.Transform(pix, width, height, halftone.DefaultParams(), dst); err != nil {
		t.Fatal(err)
	}

	img := dst.Image()
	// Grid points are pixel corners, the 2px radius covers the four pixels
	// around each of them.
	for _, pt := range []image.Point{{5, 5}, {4, 4}, {4, 5}, {5, 4}, {6, 5}, {3, 4}} {
		if c := img.NRGBAAt(pt.X, pt.Y); c != white {
			t.Errorf("pixel %v is %v, want white", pt, c)
		}
	}
	for _, pt := range []image.Point{{2, 2}, {7, 7}, {2, 7}, {7, 2}} {
		if c := img.NRGBAAt(pt.X, pt.Y); c != black {
			t.Errorf("pixel %v is %v, want black", pt, c)
		}
	}
}

func TestDeterministic(t *testing.T) {
	const width, height = 37, 29
	pix := gradient(width, height)
	p := halftone.Params{DotDiameter: 6, GridSpacing: 4}

	a, b := draw.NewImage(width, height), draw.NewImage(width, height)
	if err := halftone.Transform(pix, width, height, p, a); err != nil {
		t.Fatal(err)
	}
	if err := halftone.Transform(pix, width, height, p, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("aliased surfaces differ")
	}

	c, d := draw.NewContext(width, height), draw.NewContext(width, height)
	if err := halftone.Transform(pix, width, height, p, c); err != nil {
		t.Fatal(err)
	}
	if err := halftone.Transform(pix, width, height, p, d); err != nil {
		t.Fatal(err)
	}
	var bufC, bufD bytes.Buffer
	if err := c.EncodePNG(&bufC); err != nil {
		t.Fatal(err)
	}
	if err := d.EncodePNG(&bufD); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bufC.Bytes(), bufD.Bytes()) {
		t.Error("anti-aliased surfaces differ")
	}
}

func TestShapeMismatchLeavesSurface(t *testing.T) {
	const width, height = 8, 8
	sentinel := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	dst := draw.NewImage(width, height)
	dst.Fill(sentinel)

	err := halftone.Transform(make([]uint8, width*height*4+4), width, height, halftone.DefaultParams(), dst)
	if !errors.Is(err, halftone.ErrInvalidBufferShape) {
		t.Fatalf("got %v, want %v", err, halftone.ErrInvalidBufferShape)
	}
	pix := dst.Pix()
	for i := 0; i < len(pix); i += 4 {
		if c := (color.NRGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}); c != sentinel {
			t.Fatalf("pixel %d changed to %v", i/4, c)
		}
	}
}
