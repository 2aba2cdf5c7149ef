package render

import (
	"image/color"
	"testing"
)

func TestPaletteRampEndpoints(t *testing.T) {
	// level = n/max*0.8 + 0.1, color (level, level*0.6, 0.1).
	if got, want := Palette(0, 40), (color.RGBA{R: 26, G: 15, B: 26, A: 255}); got != want {
		t.Errorf("Palette(0, 40) = %v, want %v", got, want)
	}
	if got, want := Palette(40, 40), (color.RGBA{R: 230, G: 138, B: 26, A: 255}); got != want {
		t.Errorf("Palette(40, 40) = %v, want %v", got, want)
	}
}

func TestPaletteMonotonicBrightness(t *testing.T) {
	prev := Palette(0, 100)
	for n := 1; n <= 100; n++ {
		cur := Palette(n, 100)
		if cur.R < prev.R || cur.G < prev.G {
			t.Fatalf("ramp not monotonic at n=%d: %v then %v", n, prev, cur)
		}
		if cur.B != prev.B {
			t.Fatalf("blue floor moved at n=%d", n)
		}
		prev = cur
	}
}

func TestPaletteSmoothClampsAndMatches(t *testing.T) {
	if got, want := PaletteSmooth(40, 40), Palette(40, 40); got != want {
		t.Errorf("PaletteSmooth(40) = %v, want %v", got, want)
	}
	if got, want := PaletteSmooth(-1, 40), Palette(0, 40); got != want {
		t.Errorf("PaletteSmooth(-1) = %v, want clamp to %v", got, want)
	}
	if got, want := PaletteSmooth(99, 40), Palette(40, 40); got != want {
		t.Errorf("PaletteSmooth(99) = %v, want clamp to %v", got, want)
	}
}
