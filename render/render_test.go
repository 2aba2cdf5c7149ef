package render

import (
	"context"
	"image"
	"testing"

	"github.com/juweissenberg/mandelview"
)

func TestSplitRectCoversBounds(t *testing.T) {
	r := image.Rect(10, 20, 110, 90) // 100x70, not divisible by 64
	tiles := SplitRect(r, 64, 64)

	if len(tiles) != 4 {
		t.Fatalf("got %d tiles, want 4", len(tiles))
	}
	area := 0
	for _, tile := range tiles {
		if !tile.In(r) {
			t.Errorf("tile %v leaves bounds %v", tile, r)
		}
		area += tile.Dx() * tile.Dy()
	}
	if want := r.Dx() * r.Dy(); area != want {
		t.Errorf("tiles cover %d pixels, want %d (must be disjoint and complete)", area, want)
	}
}

func TestSplitRectRejectsBadTileSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for non-positive tile size")
		}
	}()
	SplitRect(image.Rect(0, 0, 10, 10), 0, 64)
}

// Odd canvas dimensions put a pixel center exactly on the view center.
func TestFrameKnownPixels(t *testing.T) {
	view := *mandelview.NewViewState()
	img, err := New().Frame(context.Background(), view, 63, 63)
	if err != nil {
		t.Fatal(err)
	}

	// The canvas center maps to c = 0, which never escapes.
	if got, want := img.RGBAAt(31, 31), Palette(view.MaxIter, view.MaxIter); got != want {
		t.Errorf("center pixel = %v, want in-set color %v", got, want)
	}

	// The left edge of an 8-wide window is far outside the set and escapes
	// on the first iteration.
	if got, want := img.RGBAAt(0, 31), Palette(0, view.MaxIter); got != want {
		t.Errorf("edge pixel = %v, want immediate-escape color %v", got, want)
	}
}

func TestFrameHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().Frame(ctx, *mandelview.NewViewState(), 128, 128); err == nil {
		t.Error("cancelled Frame returned no error")
	}
}

func TestPreviewKeepsCanvasSize(t *testing.T) {
	img, err := New().Preview(context.Background(), *mandelview.NewViewState(), 64, 48, 4)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("preview is %v, want 64x48", img.Bounds())
	}
}

func TestSingleWorkerMatchesParallel(t *testing.T) {
	view := *mandelview.NewViewState()
	a, err := NewWithWorkers(1).Frame(context.Background(), view, 80, 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithWorkers(8).Frame(context.Background(), view, 80, 50)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d differs between worker counts", i)
		}
	}
}

func BenchmarkFrame(b *testing.B) {
	pool := New()
	view := *mandelview.NewViewState()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Frame(context.Background(), view, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrameSmooth(b *testing.B) {
	pool := New()
	view := *mandelview.NewViewState()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.FrameSmooth(context.Background(), view, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}
