package mandelview

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"
)

// Renderer produces a full-canvas frame for a view snapshot. Implemented by
// the render package; the web session accepts the interface so tests can plug
// in a cheap fake.
type Renderer interface {
	Frame(ctx context.Context, view ViewState, w, h int) (*image.RGBA, error)
}

// Event op codes carried over the websocket from the browser client.
const (
	OpPointerDown  = "pointerdown"
	OpPointerMove  = "pointermove"
	OpPointerUp    = "pointerup"
	OpWheel        = "wheel"
	OpTouches      = "touches"
	OpReset        = "reset"
	OpMaxIter      = "maxiter"
	OpEscapeRadius = "radius"
	OpResize       = "resize"
)

// Event is one input event from the browser. Only the fields relevant to the
// op are populated.
type Event struct {
	Op      string  `json:"op"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Delta   float64 `json:"delta,omitempty"`
	Value   float64 `json:"value,omitempty"`
	W       int     `json:"w,omitempty"`
	H       int     `json:"h,omitempty"`
	Touches []Touch `json:"touches,omitempty"`
}

// Apply feeds the event into the controller and reports whether the view
// changed and a re-render is due.
func Apply(c *Controller, ev Event) (changed bool, err error) {
	switch ev.Op {
	case OpPointerDown:
		c.PointerDown(ev.X, ev.Y)
		return false, nil
	case OpPointerMove:
		return c.PointerMove(ev.X, ev.Y), nil
	case OpPointerUp:
		c.PointerUp()
		return false, nil
	case OpWheel:
		return c.Wheel(ev.Delta), nil
	case OpTouches:
		return c.Touches(ev.Touches), nil
	case OpReset:
		return c.Reset(), nil
	case OpMaxIter:
		return c.SetMaxIter(int(ev.Value)), nil
	case OpEscapeRadius:
		return c.SetEscapeRadius(ev.Value), nil
	case OpResize:
		return c.Resize(ev.W, ev.H), nil
	default:
		return false, fmt.Errorf("unknown event op %q", ev.Op)
	}
}

// frameHeaderLen is the binary frame prefix: width and height as uint32 BE.
const frameHeaderLen = 8

// EncodeFrame serializes an RGBA frame as width/height header plus raw
// pixels, ready for a single binary websocket message. The pixel order
// matches the browser's ImageData, so the client can blit without conversion.
func EncodeFrame(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	buf := make([]byte, frameHeaderLen+len(img.Pix))
	binary.BigEndian.PutUint32(buf[0:4], uint32(w))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h))
	copy(buf[frameHeaderLen:], img.Pix)
	return buf
}

// DecodeFrame parses a binary frame message back into dimensions and pixels.
func DecodeFrame(msg []byte) (w, h int, pix []byte, err error) {
	if len(msg) < frameHeaderLen {
		return 0, 0, nil, fmt.Errorf("frame message too short: %d bytes", len(msg))
	}
	w = int(binary.BigEndian.Uint32(msg[0:4]))
	h = int(binary.BigEndian.Uint32(msg[4:8]))
	pix = msg[frameHeaderLen:]
	if len(pix) != w*h*4 {
		return 0, 0, nil, fmt.Errorf("frame payload is %d bytes, want %d for %dx%d", len(pix), w*h*4, w, h)
	}
	return w, h, pix, nil
}
