//go:build js && wasm

package circles

import (
	"fmt"
	"syscall/js"

	"github.com/esimov/circle-art/draw"
)

// handleUpload converts every image picked through the file input.
func (c *Canvas) handleUpload() {
	changeHandler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		files := c.fileInput.Get("files")
		if files.Length() == 0 {
			return nil
		}
		file := files.Index(0)

		// Reading the file waits on a promise, which must not block the event loop.
		go func() {
			if err := c.processFile(file); err != nil {
				c.Alert(fmt.Sprintf("Processing failed: %v", err))
			}
		}()
		return nil
	})
	c.fileInput.Call("addEventListener", "change", changeHandler)
}

// processFile decodes the uploaded file and draws its circle rendering.
// The webcam rendering is paused while the uploaded image is shown and
// resumes if the upload fails.
func (c *Canvas) processFile(file js.Value) (err error) {
	end, err := c.view.beginUpload()
	if err != nil {
		return err
	}
	defer func() { end(err) }()

	c.setProcessed(false)

	b, err := c.readFile(file)
	if err != nil {
		return err
	}
	data, width, height, err := decode(b)
	if err != nil {
		return err
	}
	res, err := c.process(data, width, height)
	if err != nil {
		return err
	}

	// Set canvas dimensions to match the image.
	c.canvas.Set("width", width)
	c.canvas.Set("height", height)
	c.putImage(res, width, height)
	c.setProcessed(true)

	c.Log(fmt.Sprintf("converted %s (%dx%d)", file.Get("name").String(), width, height))
	return nil
}

// readFile copies the content of a File object into a byte slice.
func (c *Canvas) readFile(file js.Value) ([]byte, error) {
	succCh := make(chan []byte)
	errCh := make(chan error)

	success := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		uint8Arr := js.Global().Get("Uint8Array").New(args[0])
		b := make([]byte, uint8Arr.Get("length").Int())
		js.CopyBytesToGo(b, uint8Arr)
		go func() { succCh <- b }()
		return nil
	})
	defer success.Release()

	failure := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		err := fmt.Errorf("failed reading the file: %s", args[0].String())
		go func() { errCh <- err }()
		return nil
	})
	defer failure.Release()

	file.Call("arrayBuffer").Call("then", success, failure)

	select {
	case b := <-succCh:
		return b, nil
	case err := <-errCh:
		return nil, err
	}
}

// handleDownload wires the download button.
func (c *Canvas) handleDownload() {
	clickHandler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		c.Download()
		return nil
	})
	c.downloadBtn.Call("addEventListener", "click", clickHandler)
}

// Download saves the canvas content as a PNG file through a temporary link.
func (c *Canvas) Download() {
	if !c.processed {
		return
	}
	link := c.doc.Call("createElement", "a")
	link.Set("download", draw.OutputName)
	link.Set("href", c.canvas.Call("toDataURL", "image/png"))

	c.body.Call("appendChild", link)
	link.Call("click")
	c.body.Call("removeChild", link)
}
