package mandelview

import (
	"image"
	"testing"
)

func TestApplyDispatch(t *testing.T) {
	c := NewController(NewViewState())

	changed, err := Apply(c, Event{Op: OpWheel, Delta: 1})
	if err != nil || !changed {
		t.Fatalf("wheel: changed=%v err=%v", changed, err)
	}

	if _, err := Apply(c, Event{Op: OpPointerDown, X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	changed, err = Apply(c, Event{Op: OpPointerMove, X: 20, Y: 10})
	if err != nil || !changed {
		t.Fatalf("pointermove: changed=%v err=%v", changed, err)
	}
	if _, err := Apply(c, Event{Op: OpPointerUp}); err != nil {
		t.Fatal(err)
	}

	if _, err := Apply(c, Event{Op: OpMaxIter, Value: 200}); err != nil {
		t.Fatal(err)
	}
	if c.View.MaxIter != 200 {
		t.Errorf("MaxIter = %d, want 200", c.View.MaxIter)
	}

	if _, err := Apply(c, Event{Op: OpEscapeRadius, Value: 4.5}); err != nil {
		t.Fatal(err)
	}
	if c.View.EscapeRadius != 4.5 {
		t.Errorf("EscapeRadius = %v, want 4.5", c.View.EscapeRadius)
	}

	if _, err := Apply(c, Event{Op: OpReset}); err != nil {
		t.Fatal(err)
	}
	if c.View.MaxIter != DefaultMaxIter {
		t.Errorf("MaxIter after reset = %d, want %d", c.View.MaxIter, DefaultMaxIter)
	}

	if _, err := Apply(c, Event{Op: "teleport"}); err == nil {
		t.Error("unknown op did not error")
	}
}

func TestFrameCodecRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 7)
	}

	w, h, pix, err := DecodeFrame(EncodeFrame(img))
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 || h != 2 {
		t.Fatalf("decoded %dx%d, want 3x2", w, h)
	}
	for i := range pix {
		if pix[i] != img.Pix[i] {
			t.Fatalf("pix[%d] = %d, want %d", i, pix[i], img.Pix[i])
		}
	}
}

func TestDecodeFrameRejectsBadMessages(t *testing.T) {
	if _, _, _, err := DecodeFrame([]byte{1, 2, 3}); err == nil {
		t.Error("short message did not error")
	}

	msg := EncodeFrame(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if _, _, _, err := DecodeFrame(msg[:len(msg)-1]); err == nil {
		t.Error("truncated payload did not error")
	}
}
