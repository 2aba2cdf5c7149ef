package mandelview

// Documented view defaults. Reset returns to these.
const (
	DefaultRange        = 8.0
	DefaultMaxIter      = 40
	DefaultEscapeRadius = 2.0
	DefaultMoveFactor   = 0.005

	// zoomStep is the per-notch wheel factor. Using the same factor for both
	// directions keeps Zoom(+1) followed by Zoom(-1) an exact no-op.
	zoomStep = 1.1

	// minRange guards against float64 degeneracy at extreme zoom depth.
	minRange = 1e-13
)

// ViewState maps screen pixels onto a window of the complex plane. One
// long-lived instance backs a rendering session; input handlers mutate it in
// place and the renderer captures it by value at frame start, so a frame
// always sees a consistent snapshot.
//
// Range is the imaginary-axis height of the window; the real-axis width is
// Range*Aspect, which keeps the set unstretched on non-square canvases.
type ViewState struct {
	Center       complex128
	Range        float64
	Aspect       float64
	MaxIter      int
	EscapeRadius float64

	// MoveFactor is the per-axis pixel-to-plane drag sensitivity. It is
	// rescaled together with Range so drags cover the same number of screen
	// pixels at every zoom level.
	MoveFactor [2]float64

	// MaxRange, when positive, bounds how far the view can zoom out.
	MaxRange float64
}

// NewViewState returns a view of the whole set with the documented defaults
// and a square aspect.
func NewViewState() *ViewState {
	v := &ViewState{Aspect: 1}
	v.Reset()
	return v
}

// Reset restores the documented defaults. Aspect is derived from the canvas
// and MaxRange is session configuration, so both survive a reset.
func (v *ViewState) Reset() {
	v.Center = 0
	v.Range = DefaultRange
	v.MaxIter = DefaultMaxIter
	v.EscapeRadius = DefaultEscapeRadius
	v.MoveFactor = [2]float64{DefaultMoveFactor, DefaultMoveFactor}
}

// PointAt maps a normalized screen coordinate (u, v in [0,1], origin top
// left) to its complex-plane point. (0.5, 0.5) maps exactly to Center.
func (v *ViewState) PointAt(u, vv float64) complex128 {
	return v.Center + complex((u-0.5)*v.Range*v.Aspect, (vv-0.5)*v.Range)
}

// Pan shifts the view by a drag of (dx, dy) screen pixels. Convention:
// dragging the image right/down moves the view window left/up, i.e. the
// center moves against the drag.
func (v *ViewState) Pan(dx, dy float64) {
	v.Center -= complex(dx*v.MoveFactor[0], dy*v.MoveFactor[1])
}

// Zoom applies one wheel notch: dir > 0 zooms in, dir < 0 zooms out.
func (v *ViewState) Zoom(dir int) {
	switch {
	case dir > 0:
		v.ZoomBy(1 / zoomStep)
	case dir < 0:
		v.ZoomBy(zoomStep)
	}
}

// ZoomBy scales the visible window by the given factor (< 1 zooms in).
// Pinch gestures feed the ratio of successive finger distances here.
func (v *ViewState) ZoomBy(scale float64) {
	if scale <= 0 {
		return
	}
	v.setRange(v.Range * scale)
}

// setRange applies a new range, clamped to the configured bounds, and
// rescales MoveFactor by the ratio actually applied.
func (v *ViewState) setRange(r float64) {
	if r < minRange {
		r = minRange
	}
	if v.MaxRange > 0 && r > v.MaxRange {
		r = v.MaxRange
	}
	ratio := r / v.Range
	v.Range = r
	v.MoveFactor[0] *= ratio
	v.MoveFactor[1] *= ratio
}

// SetAspect recomputes the aspect ratio from the canvas dimensions. Called on
// every resize.
func (v *ViewState) SetAspect(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.Aspect = float64(w) / float64(h)
}

// SetMaxIter overrides the iteration cap. Values below 1 clamp to 1.
func (v *ViewState) SetMaxIter(n int) {
	if n < 1 {
		n = 1
	}
	v.MaxIter = n
}

// SetEscapeRadius overrides the escape threshold. Non-positive values clamp
// to a small positive epsilon so the evaluator stays total.
func (v *ViewState) SetEscapeRadius(r float64) {
	if r <= 0 {
		r = 1e-9
	}
	v.EscapeRadius = r
}

// GoTo frames the given region: the center snaps to the region's midpoint and
// the range is chosen so the region's full width fits the canvas.
func (v *ViewState) GoTo(r Region) {
	v.Center = r.Center()
	v.setRange(r.Width() / v.Aspect)
}
