package mandelview

import "math"

// GestureState is the controller's input mode.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StatePinching
)

// Touch is one active touch point in screen pixels.
type Touch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Controller translates pointer, wheel and touch events into ViewState
// mutations. It owns no I/O; hosts poll their input system, feed events in and
// re-render whenever a method reports a change.
//
// Transitions: pointer/touch down enters dragging, a second touch promotes
// dragging to pinching, lifting back to one touch resumes dragging, lifting
// everything returns to idle.
type Controller struct {
	View *ViewState

	state        GestureState
	lastX, lastY float64
	lastDist     float64
}

// NewController wraps an existing view.
func NewController(v *ViewState) *Controller {
	return &Controller{View: v}
}

// State reports the current gesture state.
func (c *Controller) State() GestureState { return c.state }

// PointerDown starts a drag at the given screen position.
func (c *Controller) PointerDown(x, y float64) {
	c.state = StateDragging
	c.lastX, c.lastY = x, y
}

// PointerMove pans the view while a drag is active. Reports whether the view
// changed.
func (c *Controller) PointerMove(x, y float64) bool {
	if c.state != StateDragging {
		return false
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	if dx == 0 && dy == 0 {
		return false
	}
	c.View.Pan(dx, dy)
	return true
}

// PointerUp ends the current drag.
func (c *Controller) PointerUp() {
	c.state = StateIdle
}

// Wheel applies one scroll event; dy > 0 zooms in. Reports whether the view
// changed.
func (c *Controller) Wheel(dy float64) bool {
	switch {
	case dy > 0:
		c.View.Zoom(1)
	case dy < 0:
		c.View.Zoom(-1)
	default:
		return false
	}
	return true
}

// Touches feeds the complete set of currently active touches, replacing the
// previous set. Single-touch behaves like a pointer drag; two or more touches
// pinch-zoom on the distance between the first two. Reports whether the view
// changed.
func (c *Controller) Touches(ts []Touch) bool {
	switch len(ts) {
	case 0:
		c.state = StateIdle
		return false

	case 1:
		t := ts[0]
		if c.state != StateDragging {
			// Fresh drag, or a pinch that just lost a finger.
			c.state = StateDragging
			c.lastX, c.lastY = t.X, t.Y
			return false
		}
		return c.PointerMove(t.X, t.Y)

	default:
		dist := math.Hypot(ts[1].X-ts[0].X, ts[1].Y-ts[0].Y)
		if c.state != StatePinching {
			c.state = StatePinching
			c.lastDist = dist
			return false
		}
		if dist <= 0 || c.lastDist <= 0 || dist == c.lastDist {
			c.lastDist = dist
			return false
		}
		// Spreading fingers grows dist and shrinks the visible range.
		c.View.ZoomBy(c.lastDist / dist)
		c.lastDist = dist
		return true
	}
}

// Reset restores the view defaults.
func (c *Controller) Reset() bool {
	c.View.Reset()
	return true
}

// SetMaxIter forwards a slider change for the iteration cap.
func (c *Controller) SetMaxIter(n int) bool {
	c.View.SetMaxIter(n)
	return true
}

// SetEscapeRadius forwards a slider change for the escape threshold.
func (c *Controller) SetEscapeRadius(r float64) bool {
	c.View.SetEscapeRadius(r)
	return true
}

// Resize recomputes the aspect ratio for a new canvas size.
func (c *Controller) Resize(w, h int) bool {
	old := c.View.Aspect
	c.View.SetAspect(w, h)
	return c.View.Aspect != old
}
