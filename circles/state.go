package circles

import "errors"

var errBusy = errors.New("an image is already being processed")

// viewState is the canvas bookkeeping which does not touch the DOM.
type viewState struct {
	paused     bool // webcam frames are not rendered
	processing bool // an uploaded image is being converted
}

// togglePause flips the webcam rendering and reports whether it runs again.
func (s *viewState) togglePause() bool {
	s.paused = !s.paused
	return !s.paused
}

// beginUpload pauses the webcam so the uploaded image stays on screen.
// The returned function must be called with the outcome of the upload:
// on failure the webcam goes back to its previous state.
func (s *viewState) beginUpload() (func(err error), error) {
	if s.processing {
		return nil, errBusy
	}
	s.processing = true
	wasPaused := s.paused
	s.paused = true

	return func(err error) {
		s.processing = false
		if err != nil {
			s.paused = wasPaused
		}
	}, nil
}
