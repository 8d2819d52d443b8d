package pixels

import (
	"fmt"
	"image"

	"github.com/esimov/stackblur-go"
)

// Blur softens the image with a stack blur of the given radius.
// A zero radius returns the source unchanged.
func Blur(src image.Image, radius uint32) (image.Image, error) {
	if radius == 0 {
		return src, nil
	}
	img, err := stackblur.Process(src, radius)
	if err != nil {
		return nil, fmt.Errorf("failed blurring the image: %w", err)
	}
	return img, nil
}
