package main

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

// previewScale is the downsampling factor for frames rendered while a drag
// or pinch is still in progress.
const previewScale = 4

// game is the ebiten front end. Input mutates the shared ViewState through
// the controller; whenever something changed, the next Update renders a fresh
// frame from scratch and Draw blits it.
type game struct {
	ctrl *mandelview.Controller
	pool *render.Pool

	w, h int

	frame       *ebiten.Image // last rendered frame, sized w×h
	img         *image.RGBA   // pixel copy of frame, kept for PNG export
	dirty       bool
	lastPreview bool

	ui      *controls
	touches []mandelview.Touch
	lastErr error
}

func newGame(ctrl *mandelview.Controller, pool *render.Pool, w, h int) *game {
	return &game{
		ctrl:  ctrl,
		pool:  pool,
		w:     w,
		h:     h,
		dirty: true,
		ui:    newControls(ctrl.View),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dirty = g.ctrl.Reset() || g.dirty
		g.ui.syncFromView()
	}

	g.updatePointer()
	g.updateTouches()

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.dirty = g.ctrl.Wheel(wy) || g.dirty
	}

	// UI actions come last so slider drags reflect this frame's cursor.
	act := g.ui.update(g.ctrl)
	g.dirty = act.changed || g.dirty
	if act.save || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := savePNG(g.img); err != nil {
			g.lastErr = err
		}
	}

	gesture := g.ctrl.State() != mandelview.StateIdle
	if g.dirty {
		if err := g.render(gesture); err != nil {
			return err
		}
	} else if !gesture && g.lastPreview {
		// Gesture settled on a preview; replace it with a full frame.
		if err := g.render(false); err != nil {
			return err
		}
	}
	return nil
}

// updatePointer drives the drag state machine from the mouse, unless the
// cursor is interacting with the on-screen controls.
func (g *game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	if g.ui.capturesPointer(mx, my) {
		if g.ctrl.State() == mandelview.StateDragging {
			g.ctrl.PointerUp()
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.PointerDown(float64(mx), float64(my))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dirty = g.ctrl.PointerMove(float64(mx), float64(my)) || g.dirty
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.PointerUp()
	}
}

// updateTouches forwards the complete active touch set every frame.
func (g *game) updateTouches() {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 && len(g.touches) == 0 {
		return
	}
	g.touches = g.touches[:0]
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		g.touches = append(g.touches, mandelview.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	g.dirty = g.ctrl.Touches(g.touches) || g.dirty
}

// render computes a fresh frame from the current view snapshot.
func (g *game) render(preview bool) error {
	view := *g.ctrl.View

	var (
		img *image.RGBA
		err error
	)
	if preview {
		img, err = g.pool.Preview(context.Background(), view, g.w, g.h, previewScale)
	} else {
		img, err = g.pool.Frame(context.Background(), view, g.w, g.h)
	}
	if err != nil {
		return err
	}

	if g.frame == nil || g.frame.Bounds().Dx() != g.w || g.frame.Bounds().Dy() != g.h {
		g.frame = ebiten.NewImage(g.w, g.h)
	}
	g.frame.WritePixels(img.Pix)
	g.img = img
	g.dirty = false
	g.lastPreview = preview
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
	g.ui.draw(screen)

	v := g.ctrl.View
	status := fmt.Sprintf("center (%.6f, %.6f)  range %.3g  iter %d  %.0f fps",
		real(v.Center), imag(v.Center), v.Range, v.MaxIter, ebiten.ActualFPS())
	if g.lastErr != nil {
		status += "  |  error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.h-24)
}

// Layout tracks the window size; a resize re-derives the aspect ratio and
// forces a full re-render at the new resolution.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctrl.Resize(g.w, g.h)
		g.dirty = true
	}
	return g.w, g.h
}
