package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/juweissenberg/mandelview"
)

// action is what the controls want from the game after one update.
type action struct {
	changed bool // view mutated, re-render
	save    bool // export the current frame
}

// controls is the on-screen UI: a row of buttons plus a collapsible settings
// panel with the iteration and escape-radius sliders.
type controls struct {
	view *mandelview.ViewState

	settingsOpen bool
	toggleBtn    button
	resetBtn     button
	saveBtn      button

	panelX, panelY, panelW, panelH int
	iterSlider                     slider
	radiusSlider                   slider
}

func newControls(view *mandelview.ViewState) *controls {
	c := &controls{
		view:      view,
		toggleBtn: button{x: 20, y: 20, w: 110, h: 32, label: "Settings"},
		resetBtn:  button{x: 140, y: 20, w: 110, h: 32, label: "Reset view"},
		saveBtn:   button{x: 260, y: 20, w: 110, h: 32, label: "Save PNG"},
		panelX:    20, panelY: 64, panelW: 360, panelH: 112,
		iterSlider:   slider{x: 36, y: 104, w: 328, h: 14, min: 1, max: 1000, label: "iterations"},
		radiusSlider: slider{x: 36, y: 150, w: 328, h: 14, min: 0.1, max: 10, label: "escape radius"},
	}
	c.syncFromView()
	return c
}

// syncFromView snaps the slider positions to the live view parameters, used
// after a reset so the UI does not disagree with the view.
func (c *controls) syncFromView() {
	c.iterSlider.val = float64(c.view.MaxIter)
	c.radiusSlider.val = c.view.EscapeRadius
}

func (c *controls) update(ctrl *mandelview.Controller) action {
	mx, my := ebiten.CursorPosition()

	var act action
	if c.toggleBtn.update(mx, my) {
		c.settingsOpen = !c.settingsOpen
	}
	if c.resetBtn.update(mx, my) {
		ctrl.Reset()
		c.syncFromView()
		act.changed = true
	}
	if c.saveBtn.update(mx, my) {
		act.save = true
	}

	if c.settingsOpen {
		if c.iterSlider.update(mx, my) {
			ctrl.SetMaxIter(int(math.Round(c.iterSlider.val)))
			act.changed = true
		}
		if c.radiusSlider.update(mx, my) {
			ctrl.SetEscapeRadius(c.radiusSlider.val)
			act.changed = true
		}
	}
	return act
}

// capturesPointer reports whether the cursor belongs to the UI right now, so
// the game does not also treat the interaction as a canvas drag.
func (c *controls) capturesPointer(mx, my int) bool {
	if c.toggleBtn.hit(mx, my) || c.resetBtn.hit(mx, my) || c.saveBtn.hit(mx, my) {
		return true
	}
	if !c.settingsOpen {
		return false
	}
	if c.iterSlider.dragging || c.radiusSlider.dragging {
		return true
	}
	return mx >= c.panelX && mx <= c.panelX+c.panelW && my >= c.panelY && my <= c.panelY+c.panelH
}

func (c *controls) draw(screen *ebiten.Image) {
	c.toggleBtn.draw(screen)
	c.resetBtn.draw(screen)
	c.saveBtn.draw(screen)

	if !c.settingsOpen {
		return
	}
	vector.DrawFilledRect(screen, float32(c.panelX), float32(c.panelY), float32(c.panelW), float32(c.panelH),
		color.RGBA{R: 20, G: 20, B: 46, A: 220}, false)
	vector.StrokeRect(screen, float32(c.panelX), float32(c.panelY), float32(c.panelW), float32(c.panelH),
		1, color.RGBA{R: 58, G: 58, B: 110, A: 255}, false)

	c.iterSlider.draw(screen, fmt.Sprintf("%s: %d", c.iterSlider.label, int(math.Round(c.iterSlider.val))))
	c.radiusSlider.draw(screen, fmt.Sprintf("%s: %.1f", c.radiusSlider.label, c.radiusSlider.val))
}

// button is a clickable rectangle with hover and pressed states.
type button struct {
	x, y, w, h int
	label      string

	hovered bool
	pressed bool
}

func (b *button) hit(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// update polls the mouse and reports whether the button was clicked (pressed
// and released while hovered).
func (b *button) update(mx, my int) (clicked bool) {
	b.hovered = b.hit(mx, my)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
		2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 8 // approximate character width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-8)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// slider is a horizontal drag control mapping track position linearly onto
// [min, max].
type slider struct {
	x, y, w, h int
	min, max   float64
	val        float64
	label      string

	dragging bool
}

// update polls the mouse and reports whether the value changed.
func (s *slider) update(mx, my int) (changed bool) {
	hit := mx >= s.x && mx <= s.x+s.w && my >= s.y-4 && my <= s.y+s.h+4
	if hit && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	t := float64(mx-s.x) / float64(s.w)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	nv := s.min + t*(s.max-s.min)
	if nv == s.val {
		return false
	}
	s.val = nv
	return true
}

func (s *slider) draw(screen *ebiten.Image, caption string) {
	ebitenutil.DebugPrintAt(screen, caption, s.x, s.y-20)

	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h),
		color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h),
		1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	t := (s.val - s.min) / (s.max - s.min)
	fill := t * float64(s.w)
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(fill), float32(s.h),
			color.RGBA{R: 100, G: 120, B: 160, A: 200}, false)
	}
	knobX := float64(s.x) + fill
	vector.DrawFilledCircle(screen, float32(knobX), float32(s.y+s.h/2), 8,
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	vector.StrokeCircle(screen, float32(knobX), float32(s.y+s.h/2), 8,
		2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
}
