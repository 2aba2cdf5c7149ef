//go:build js && wasm

package main

import "syscall/js"

// fitCanvasToWindow sizes the canvas element to the current window and
// returns the new dimensions.
func fitCanvasToWindow() (w, h int) {
	window := js.Global().Get("window")
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "viewer")

	w = window.Get("innerWidth").Int()
	h = window.Get("innerHeight").Int()
	canvas.Set("width", w)
	canvas.Set("height", h)
	return w, h
}

// drawFrame blits one complete RGBA frame onto the canvas.
func drawFrame(w, h int, pix []byte) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "viewer")
	ctx := canvas.Call("getContext", "2d")

	// Copy the Go pixel slice into a JS Uint8ClampedArray; ImageData expects
	// RGBA in exactly the layout the server sends.
	jsData := js.Global().Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(jsData, pix)

	imageData := js.Global().Get("ImageData").New(jsData, w, h)
	ctx.Call("putImageData", imageData, 0, 0)
}
