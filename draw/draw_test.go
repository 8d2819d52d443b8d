package draw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func covered(m image.Image) []image.Point {
	var pts []image.Point
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0 {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

func TestCircleMask(t *testing.T) {
	c := &Circle{Cx: 10, Cy: 10, R: 2}
	if got, want := c.Bounds(), image.Rect(8, 8, 12, 12); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	// A 4x4 block around the center without its corners.
	want := []image.Point{
		{9, 8}, {10, 8},
		{8, 9}, {9, 9}, {10, 9}, {11, 9},
		{8, 10}, {9, 10}, {10, 10}, {11, 10},
		{9, 11}, {10, 11},
	}
	if diff := cmp.Diff(want, covered(c)); diff != "" {
		t.Errorf("coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestCircleEmpty(t *testing.T) {
	for _, r := range []float64{0, -1} {
		c := &Circle{Cx: 3, Cy: 3, R: r}
		if !c.Bounds().Empty() {
			t.Errorf("radius %v: bounds %v, want empty", r, c.Bounds())
		}
		if _, _, _, a := c.At(3, 3).RGBA(); a != 0 {
			t.Errorf("radius %v: center pixel covered", r)
		}
	}
}

func TestImageFill(t *testing.T) {
	s := NewImage(3, 2)
	s.Fill(black)
	want := bytes.Repeat([]uint8{0, 0, 0, 0xff}, 6)
	if diff := cmp.Diff(want, s.Pix()); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestImageFillCircleClipped(t *testing.T) {
	s := NewImage(6, 6)
	s.Fill(black)
	s.FillCircle(0, 0, 2, white)

	var got []image.Point
	img := s.Image()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			switch img.NRGBAAt(x, y) {
			case white:
				got = append(got, image.Point{X: x, Y: y})
			case black:
			default:
				t.Errorf("pixel (%d, %d) is neither black nor white", x, y)
			}
		}
	}
	want := []image.Point{{0, 0}, {1, 0}, {0, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestImageFillCircleOutside(t *testing.T) {
	s := NewImage(4, 4)
	s.Fill(black)
	before := append([]uint8(nil), s.Pix()...)
	s.FillCircle(-10, -10, 3, white)
	s.FillCircle(2, 2, 0, white)
	if !bytes.Equal(before, s.Pix()) {
		t.Error("surface changed")
	}
}

func TestImagePixSubImage(t *testing.T) {
	parent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	sub := parent.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	s := NewImageFrom(sub)
	s.Fill(white)
	want := bytes.Repeat([]uint8{0xff, 0xff, 0xff, 0xff}, 4)
	if diff := cmp.Diff(want, s.Pix()); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
	if c := parent.NRGBAAt(0, 0); c != (color.NRGBA{}) {
		t.Errorf("pixel outside the sub image changed to %v", c)
	}
}

func TestEncodePNG(t *testing.T) {
	s := NewImage(5, 4)
	s.Fill(black)
	s.FillCircle(2, 2, 1, white)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != s.Bounds() {
		t.Errorf("decoded bounds %v, want %v", got, s.Bounds())
	}
}

func TestContext(t *testing.T) {
	s := NewContext(12, 12)
	if got, want := s.Bounds(), image.Rect(0, 0, 12, 12); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
	s.Fill(black)
	s.FillCircle(6, 6, 0, white)

	img := s.Image()
	if r, g, b, _ := img.At(5, 5).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("zero radius circle painted the center")
	}

	s.FillCircle(6, 6, 3, white)
	if r, _, _, _ := img.At(5, 5).RGBA(); r != 0xffff {
		t.Errorf("center pixel red = %#x, want %#x", r, 0xffff)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("corner pixel red = %#x, want 0", r)
	}
}
