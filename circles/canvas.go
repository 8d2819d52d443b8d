//go:build js && wasm

package circles

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"syscall/js"

	"github.com/esimov/circle-art/draw"
	"github.com/esimov/circle-art/halftone"
	"github.com/esimov/circle-art/pixels"
)

// Canvas struct holds the Javascript objects needed for the Canvas creation
type Canvas struct {
	done   chan struct{}
	stop   sync.Once
	succCh chan struct{}
	errCh  chan error

	// DOM elements
	window      js.Value
	doc         js.Value
	body        js.Value
	fileInput   js.Value
	downloadBtn js.Value
	windowSize  struct{ width, height int }

	// Canvas properties
	canvas   js.Value
	ctx      js.Value
	reqID    js.Value
	renderer js.Func

	// Webcam properties
	video     js.Value
	hasWebcam bool

	// Canvas interaction related variables
	useBlur    bool
	blurRadius uint32

	// UI state, the transform itself keeps none.
	view      viewState
	busy      atomic.Bool
	processed bool

	params halftone.Params
}

const (
	minBlurRadius = 1
	maxBlurRadius = 10
)

// NewCanvas creates and initializes the new Canvas element
func NewCanvas() (*Canvas, error) {
	var c Canvas
	c.window = js.Global()
	c.doc = c.window.Get("document")
	c.body = c.doc.Get("body")

	c.windowSize.width = 640
	c.windowSize.height = 480

	c.canvas = c.doc.Call("createElement", "canvas")
	c.canvas.Set("width", c.windowSize.width)
	c.canvas.Set("height", c.windowSize.height)
	c.canvas.Set("id", "canvas")
	c.body.Call("appendChild", c.canvas)

	c.ctx = c.canvas.Call("getContext", "2d")
	if c.ctx.IsNull() || c.ctx.IsUndefined() {
		return nil, fmt.Errorf("canvas 2d context: %w", halftone.ErrUnavailableSurface)
	}

	c.fileInput = c.doc.Call("createElement", "input")
	c.fileInput.Set("type", "file")
	c.fileInput.Set("accept", "image/*")
	c.fileInput.Set("id", "upload")
	c.body.Call("appendChild", c.fileInput)

	c.downloadBtn = c.doc.Call("createElement", "button")
	c.downloadBtn.Set("id", "download")
	c.downloadBtn.Set("innerText", "Download Image")
	c.downloadBtn.Set("disabled", true)
	c.body.Call("appendChild", c.downloadBtn)

	c.useBlur = false
	c.blurRadius = 2
	c.params = halftone.DefaultParams()

	c.done = make(chan struct{})
	c.handleUpload()
	c.handleDownload()
	c.detectKeyPress()

	return &c, nil
}

// Wait blocks until the canvas is stopped.
func (c *Canvas) Wait() {
	<-c.done
}

// Render calls the `requestAnimationFrame` Javascript function in asynchronous mode.
func (c *Canvas) Render() error {
	if !c.hasWebcam {
		return fmt.Errorf("no webcam stream to render")
	}
	width, height := c.windowSize.width, c.windowSize.height
	var data = make([]byte, width*height*4)

	c.renderer = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		c.reqID = c.window.Call("requestAnimationFrame", c.renderer)
		if c.view.paused {
			return nil
		}
		// Drop the frame if the previous one is still being processed.
		if !c.busy.CompareAndSwap(false, true) {
			return nil
		}
		go func() {
			defer c.busy.Store(false)

			// Draw the webcam frame to the canvas element
			c.ctx.Call("drawImage", c.video, 0, 0)
			rgba := c.ctx.Call("getImageData", 0, 0, width, height).Get("data")

			// Convert the rgba value of type Uint8ClampedArray to Uint8Array in order to
			// be able to transfer it from Javascript to Go via the js.CopyBytesToGo function.
			uint8Arr := js.Global().Get("Uint8Array").New(rgba)
			js.CopyBytesToGo(data, uint8Arr)

			res, err := c.process(data, width, height)
			if err != nil {
				c.Log(fmt.Sprint(err))
				return
			}
			c.putImage(res, width, height)
			c.setProcessed(true)
		}()
		return nil
	})
	// Release renderer to free up resources.
	defer c.renderer.Release()

	c.window.Call("requestAnimationFrame", c.renderer)
	<-c.done

	return nil
}

// Stop stops the rendering.
func (c *Canvas) Stop() {
	c.stop.Do(func() {
		if c.hasWebcam {
			c.window.Call("cancelAnimationFrame", c.reqID)
		}
		close(c.done)
	})
}

// StartWebcam reads the webcam data and feeds it into the canvas element.
// It returns an empty struct in case of success and error in case of failure.
func (c *Canvas) StartWebcam() (*Canvas, error) {
	var err error
	c.succCh = make(chan struct{})
	c.errCh = make(chan error)

	c.video = c.doc.Call("createElement", "video")

	// If we don't do this, the stream will not be played.
	c.video.Set("autoplay", 1)
	c.video.Set("playsinline", 1) // important for iPhones

	// The video should fill out all of the canvas
	c.video.Set("width", 0)
	c.video.Set("height", 0)

	c.body.Call("appendChild", c.video)

	success := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() {
			c.video.Set("srcObject", args[0])
			c.video.Call("play")
			c.succCh <- struct{}{}
		}()
		return nil
	})

	failure := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() {
			err = fmt.Errorf("failed initialising the camera: %s", args[0].String())
			c.errCh <- err
		}()
		return nil
	})

	opts := js.Global().Get("Object").New()

	videoSize := js.Global().Get("Object").New()
	videoSize.Set("width", c.windowSize.width)
	videoSize.Set("height", c.windowSize.height)
	videoSize.Set("aspectRatio", 1.777777778)

	opts.Set("video", videoSize)
	opts.Set("audio", false)

	mediaDevices := c.window.Get("navigator").Get("mediaDevices")
	if mediaDevices.IsUndefined() {
		return nil, fmt.Errorf("failed initialising the camera: media devices not supported")
	}
	promise := mediaDevices.Call("getUserMedia", opts)
	promise.Call("then", success, failure)

	select {
	case <-c.succCh:
		c.hasWebcam = true
		return c, nil
	case err := <-c.errCh:
		return nil, err
	}
}

// process runs the optional blur and the halftone transform over an RGBA buffer.
func (c *Canvas) process(data []uint8, width, height int) ([]uint8, error) {
	if c.useBlur {
		img, err := pixels.PixToImage(data, width, height)
		if err != nil {
			return nil, err
		}
		blurred, err := pixels.Blur(img, c.blurRadius)
		if err != nil {
			return nil, err
		}
		data = pixels.ImgToPix(blurred)
	}

	dst := draw.NewImage(width, height)
	if err := halftone.Transform(data, width, height, c.params, dst); err != nil {
		return nil, err
	}
	return dst.Pix(), nil
}

// putImage replaces the canvas content with the pixel buffer.
func (c *Canvas) putImage(data []uint8, width, height int) {
	uint8Arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(uint8Arr, data)

	uint8Clamped := js.Global().Get("Uint8ClampedArray").New(uint8Arr)
	rawData := js.Global().Get("ImageData").New(uint8Clamped, width, height)

	c.ctx.Call("putImageData", rawData, 0, 0)
}

// setProcessed toggles the availability of the download button.
func (c *Canvas) setProcessed(ok bool) {
	if c.processed == ok {
		return
	}
	c.processed = ok
	c.downloadBtn.Set("disabled", !ok)
}

// detectKeyPress listen for the keypress event and retrieves the key code.
func (c *Canvas) detectKeyPress() {
	keyEventHandler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		keyCode := args[0].Get("key")
		switch {
		case keyCode.String() == "b":
			c.useBlur = !c.useBlur
		case keyCode.String() == "]":
			if c.blurRadius < maxBlurRadius {
				c.blurRadius++
			}
		case keyCode.String() == "[":
			if c.blurRadius > minBlurRadius {
				c.blurRadius--
			}
		case keyCode.String() == "p":
			if c.view.togglePause() {
				c.resetSize()
			}
		case keyCode.String() == "s":
			c.Download()
		case keyCode.String() == "q":
			c.Stop()
		}
		return nil
	})
	c.doc.Call("addEventListener", "keypress", keyEventHandler)
}

// resetSize restores the webcam sized canvas after an uploaded image was shown.
func (c *Canvas) resetSize() {
	c.canvas.Set("width", c.windowSize.width)
	c.canvas.Set("height", c.windowSize.height)
}

// Log calls the `console.log` Javascript function
func (c *Canvas) Log(args ...interface{}) {
	c.window.Get("console").Call("log", args...)
}

// Alert calls the `alert` Javascript function
func (c *Canvas) Alert(args ...interface{}) {
	alert := c.window.Get("alert")
	alert.Invoke(args...)
}

// decode decodes an encoded image into a pixel buffer.
func decode(b []byte) ([]uint8, int, int, error) {
	img, _, err := pixels.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	return pixels.ImgToPix(img), bounds.Dx(), bounds.Dy(), nil
}
