package mandelview

import "testing"

func TestDragPansView(t *testing.T) {
	c := NewController(NewViewState())

	c.PointerDown(100, 100)
	if c.State() != StateDragging {
		t.Fatalf("state = %v, want dragging", c.State())
	}
	if !c.PointerMove(110, 100) {
		t.Fatal("PointerMove reported no change")
	}
	if got, want := real(c.View.Center), -0.05; !near(got, want, 1e-15) {
		t.Errorf("real(Center) = %v, want %v", got, want)
	}

	c.PointerUp()
	if c.State() != StateIdle {
		t.Errorf("state after PointerUp = %v, want idle", c.State())
	}
}

func TestPointerMoveIgnoredWhenIdle(t *testing.T) {
	c := NewController(NewViewState())
	if c.PointerMove(50, 50) {
		t.Error("idle PointerMove reported a change")
	}
	if c.View.Center != 0 {
		t.Errorf("Center = %v, want untouched 0", c.View.Center)
	}
}

func TestWheelZoom(t *testing.T) {
	c := NewController(NewViewState())
	if !c.Wheel(3) {
		t.Fatal("Wheel(3) reported no change")
	}
	if c.View.Range >= DefaultRange {
		t.Errorf("Range = %v, want < %v after zoom in", c.View.Range, DefaultRange)
	}
	if c.Wheel(0) {
		t.Error("Wheel(0) reported a change")
	}
}

func TestTouchStateTransitions(t *testing.T) {
	c := NewController(NewViewState())

	one := []Touch{{ID: 1, X: 100, Y: 100}}
	if c.Touches(one) {
		t.Error("first touch reported a change")
	}
	if c.State() != StateDragging {
		t.Fatalf("state = %v, want dragging", c.State())
	}

	two := []Touch{{ID: 1, X: 100, Y: 100}, {ID: 2, X: 200, Y: 100}}
	c.Touches(two)
	if c.State() != StatePinching {
		t.Fatalf("state = %v, want pinching after second touch", c.State())
	}

	if c.Touches(one) {
		t.Error("dropping back to one touch reported a change")
	}
	if c.State() != StateDragging {
		t.Fatalf("state = %v, want dragging after losing a finger", c.State())
	}

	c.Touches(nil)
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle after all touches lifted", c.State())
	}
}

func TestSingleTouchDrags(t *testing.T) {
	c := NewController(NewViewState())
	c.Touches([]Touch{{ID: 7, X: 100, Y: 100}})
	if !c.Touches([]Touch{{ID: 7, X: 90, Y: 100}}) {
		t.Fatal("touch move reported no change")
	}
	if got, want := real(c.View.Center), 0.05; !near(got, want, 1e-15) {
		t.Errorf("real(Center) = %v, want %v", got, want)
	}
}

func TestPinchZoom(t *testing.T) {
	c := NewController(NewViewState())

	c.Touches([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}})
	if !c.Touches([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 200, Y: 0}}) {
		t.Fatal("pinch spread reported no change")
	}
	// Fingers doubled their distance: the visible range halves.
	if got, want := c.View.Range, DefaultRange/2; !near(got, want, 1e-12) {
		t.Errorf("Range = %v, want %v", got, want)
	}
}

func TestResize(t *testing.T) {
	c := NewController(NewViewState())
	if !c.Resize(200, 100) {
		t.Fatal("Resize to a new aspect reported no change")
	}
	if c.View.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.View.Aspect)
	}
	if c.Resize(400, 200) {
		t.Error("Resize with the same aspect reported a change")
	}
}
