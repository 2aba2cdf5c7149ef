// webclient.go is the WASM browser front end of the Mandelbrot viewer.
// It forwards canvas input events to the server over a websocket and blits
// the RGBA frames the server pushes back. All view math runs server side;
// this program is canvas, events and a socket.
//
// Build with: GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/webclient

//go:build js && wasm

package main

import (
	"fmt"
	"log"
	"syscall/js"

	"github.com/juweissenberg/mandelview"
)

func main() {
	logScreenf("Starting viewer client...")

	// Determine server address for the WebSocket connection.
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketURL := proto + "://" + host + "/ws"

	logScreenf("Connecting to %s...", websocketURL)
	conn := newWSConn(websocketURL)

	// Size the canvas to the window and tell the server, so the first real
	// frame already has the right dimensions and aspect ratio.
	w, h := fitCanvasToWindow()
	if err := conn.send(mandelview.Event{Op: mandelview.OpResize, W: w, H: h}); err != nil {
		logFatalf("send resize: %v", err)
	}

	bindInput(conn)
	logScreenf("Connected. Drag to pan, scroll or pinch to zoom.")

	// Frame loop: every binary message is one complete frame.
	go func() {
		for msg := range conn.frames {
			fw, fh, pix, err := mandelview.DecodeFrame(msg)
			if err != nil {
				logFatalf("bad frame: %v", err)
			}
			drawFrame(fw, fh, pix)
		}
		logScreenf("Connection closed.")
	}()

	// Block main goroutine to keep the WASM program running.
	select {}
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+fmt.Sprintf(format, a...)+"\n")
}

// logFatalf logs a fatal error to the log element and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}
