package halftone

import "errors"

var (
	// ErrInvalidBufferShape is returned when the pixel buffer length,
	// the stated dimensions and the surface bounds disagree.
	ErrInvalidBufferShape = errors.New("invalid buffer shape")

	// ErrUnavailableSurface is returned when there is no drawing target.
	ErrUnavailableSurface = errors.New("drawing surface unavailable")

	// ErrInvalidParams is returned for non-positive dot diameter or grid spacing.
	ErrInvalidParams = errors.New("invalid halftone parameters")
)
