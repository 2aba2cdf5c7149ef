//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"syscall/js"

	"github.com/juweissenberg/mandelview"
)

// wsConn wraps a browser WebSocket. Outgoing events are sent as JSON text
// messages; incoming binary messages (whole frames) are delivered on the
// frames channel.
type wsConn struct {
	ws     js.Value
	frames chan []byte

	mu     sync.Mutex // js onclose can preempt send()
	closed bool
	err    error

	openOnce sync.Once
	openCh   chan struct{} // closed once connected (or failed to)
}

func newWSConn(url string) *wsConn {
	ws := js.Global().Get("WebSocket").New(url)
	c := &wsConn{
		ws:     ws,
		frames: make(chan []byte, 4),
		openCh: make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		c.openOnce.Do(func() { close(c.openCh) })
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		c.err = io.ErrUnexpectedEOF
		c.mu.Unlock()
		c.openOnce.Do(func() { close(c.openCh) })
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		data := args[0].Get("data")
		// binaryType is arraybuffer, so binary data always arrives as one.
		if !data.InstanceOf(js.Global().Get("ArrayBuffer")) {
			return nil
		}
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		c.frames <- b
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		if !c.closed {
			c.closed = true
			close(c.frames)
		}
		c.mu.Unlock()
		return nil
	}))

	return c
}

// send marshals the event and ships it as a text message. Blocks until the
// socket has finished opening.
func (c *wsConn) send(ev mandelview.Event) error {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	if c.closed {
		return io.ErrClosedPipe
	}

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	c.ws.Call("send", string(b))
	return nil
}
