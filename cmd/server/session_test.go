package main

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

func dialSession(t *testing.T) (*websocket.Conn, context.Context) {
	t.Helper()

	srv := httptest.NewServer(websocketHandler(sessionConfig{pool: render.New(), maxRange: 16}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("websocket.Dial: %v", err)
	}
	t.Cleanup(func() { c.Close(websocket.StatusNormalClosure, "") })

	// Frames are full RGBA canvases, far beyond the default read limit.
	c.SetReadLimit(1 << 25)
	return c, ctx
}

func readFrame(t *testing.T, ctx context.Context, c *websocket.Conn) (w, h int, pix []byte) {
	t.Helper()

	typ, msg, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Fatalf("message type = %v, want binary", typ)
	}
	w, h, pix, err = mandelview.DecodeFrame(msg)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return w, h, pix
}

func TestSessionSendsInitialFrame(t *testing.T) {
	c, ctx := dialSession(t)

	w, h, pix := readFrame(t, ctx, c)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("initial frame is %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
	if len(pix) != w*h*4 {
		t.Errorf("payload is %d bytes, want %d", len(pix), w*h*4)
	}
}

func TestSessionRendersAfterInput(t *testing.T) {
	c, ctx := dialSession(t)
	readFrame(t, ctx, c) // initial

	// Shrink the canvas first so the remaining frames stay cheap.
	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpResize, W: 64, H: 48}); err != nil {
		t.Fatal(err)
	}
	if w, h, _ := readFrame(t, ctx, c); w != 64 || h != 48 {
		t.Fatalf("frame after resize is %dx%d, want 64x48", w, h)
	}

	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpWheel, Delta: 1}); err != nil {
		t.Fatal(err)
	}
	if w, h, _ := readFrame(t, ctx, c); w != 64 || h != 48 {
		t.Fatalf("frame after zoom is %dx%d, want 64x48", w, h)
	}
}

func TestSessionSettlesDragWithFullFrame(t *testing.T) {
	c, ctx := dialSession(t)
	readFrame(t, ctx, c) // initial

	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpResize, W: 64, H: 48}); err != nil {
		t.Fatal(err)
	}
	readFrame(t, ctx, c)

	// A drag produces a (possibly coalesced) preview frame...
	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpPointerDown, X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpPointerMove, X: 30, Y: 10}); err != nil {
		t.Fatal(err)
	}
	readFrame(t, ctx, c)

	// ...and releasing the pointer always yields one more full-detail frame.
	if err := wsjson.Write(ctx, c, mandelview.Event{Op: mandelview.OpPointerUp}); err != nil {
		t.Fatal(err)
	}
	if w, h, _ := readFrame(t, ctx, c); w != 64 || h != 48 {
		t.Fatalf("settle frame is %dx%d, want 64x48", w, h)
	}
}
