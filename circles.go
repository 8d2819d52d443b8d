//go:build js && wasm

package main

import (
	"fmt"

	"github.com/esimov/circle-art/circles"
)

func main() {
	c, err := circles.NewCanvas()
	if err != nil {
		fmt.Println(err)
		return
	}
	webcam, err := c.StartWebcam()
	if err != nil {
		c.Alert("Webcam not detected! You can still upload an image.")
		c.Wait()
		return
	}
	if err := webcam.Render(); err != nil {
		c.Alert(fmt.Sprint(err))
	}
}
