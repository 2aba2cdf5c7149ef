//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/juweissenberg/mandelview"
)

// bindInput attaches DOM listeners for mouse, wheel, touch, sliders and
// buttons, forwarding everything as events to the server. The settings panel
// toggle is the only purely client-side control.
func bindInput(conn *wsConn) {
	doc := js.Global().Get("document")
	window := js.Global().Get("window")
	canvas := doc.Call("getElementById", "viewer")

	post := func(ev mandelview.Event) {
		if err := conn.send(ev); err != nil {
			logScreenf("send: %v", err)
		}
	}
	listen := func(target js.Value, event string, fn func(e js.Value)) {
		target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
			fn(args[0])
			return nil
		}))
	}

	// Mouse drag. Moves are only worth forwarding while a button is held;
	// the server ignores idle moves anyway.
	dragging := false
	listen(canvas, "mousedown", func(e js.Value) {
		dragging = true
		post(mandelview.Event{Op: mandelview.OpPointerDown, X: e.Get("offsetX").Float(), Y: e.Get("offsetY").Float()})
	})
	listen(canvas, "mousemove", func(e js.Value) {
		if dragging {
			post(mandelview.Event{Op: mandelview.OpPointerMove, X: e.Get("offsetX").Float(), Y: e.Get("offsetY").Float()})
		}
	})
	endDrag := func(js.Value) {
		if dragging {
			dragging = false
			post(mandelview.Event{Op: mandelview.OpPointerUp})
		}
	}
	listen(canvas, "mouseup", endDrag)
	listen(canvas, "mouseleave", endDrag)

	// Wheel zoom. Scrolling up (negative deltaY) zooms in.
	listen(canvas, "wheel", func(e js.Value) {
		e.Call("preventDefault")
		post(mandelview.Event{Op: mandelview.OpWheel, Delta: -e.Get("deltaY").Float()})
	})

	// Touch: the full active set goes to the server on every change, which
	// drives the drag/pinch state machine there.
	forwardTouches := func(e js.Value) {
		e.Call("preventDefault")
		rect := canvas.Call("getBoundingClientRect")
		left, top := rect.Get("left").Float(), rect.Get("top").Float()

		list := e.Get("touches")
		touches := make([]mandelview.Touch, list.Get("length").Int())
		for i := range touches {
			t := list.Call("item", i)
			touches[i] = mandelview.Touch{
				ID: t.Get("identifier").Int(),
				X:  t.Get("clientX").Float() - left,
				Y:  t.Get("clientY").Float() - top,
			}
		}
		post(mandelview.Event{Op: mandelview.OpTouches, Touches: touches})
	}
	listen(canvas, "touchstart", forwardTouches)
	listen(canvas, "touchmove", forwardTouches)
	listen(canvas, "touchend", forwardTouches)
	listen(canvas, "touchcancel", forwardTouches)

	// Window resize re-fits the canvas and updates the server's aspect ratio.
	listen(window, "resize", func(js.Value) {
		w, h := fitCanvasToWindow()
		post(mandelview.Event{Op: mandelview.OpResize, W: w, H: h})
	})

	// Settings panel controls.
	iter := doc.Call("getElementById", "iterations")
	iterLabel := doc.Call("getElementById", "iterationsValue")
	radius := doc.Call("getElementById", "radius")
	radiusLabel := doc.Call("getElementById", "radiusValue")

	listen(iter, "input", func(js.Value) {
		v, err := strconv.Atoi(iter.Get("value").String())
		if err != nil {
			return
		}
		iterLabel.Set("textContent", iter.Get("value").String())
		post(mandelview.Event{Op: mandelview.OpMaxIter, Value: float64(v)})
	})
	listen(radius, "input", func(js.Value) {
		v, err := strconv.ParseFloat(radius.Get("value").String(), 64)
		if err != nil {
			return
		}
		radiusLabel.Set("textContent", radius.Get("value").String())
		post(mandelview.Event{Op: mandelview.OpEscapeRadius, Value: v})
	})

	listen(doc.Call("getElementById", "reset"), "click", func(js.Value) {
		// Snap the sliders back to the view defaults before telling the server.
		iter.Set("value", strconv.Itoa(mandelview.DefaultMaxIter))
		iterLabel.Set("textContent", strconv.Itoa(mandelview.DefaultMaxIter))
		radius.Set("value", strconv.FormatFloat(mandelview.DefaultEscapeRadius, 'f', -1, 64))
		radiusLabel.Set("textContent", strconv.FormatFloat(mandelview.DefaultEscapeRadius, 'f', -1, 64))
		post(mandelview.Event{Op: mandelview.OpReset})
	})

	settings := doc.Call("getElementById", "settings")
	listen(doc.Call("getElementById", "settingsToggle"), "click", func(js.Value) {
		hidden := settings.Get("style").Get("display").String() == "none"
		if hidden {
			settings.Get("style").Set("display", "block")
		} else {
			settings.Get("style").Set("display", "none")
		}
	})
}
