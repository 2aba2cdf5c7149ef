package render

import (
	"image/color"
	"math"
)

// Palette maps an iteration count to the viewer's fixed color ramp: a
// brightness level from 0.1 (immediate escape) to 0.9 (the iteration cap),
// tinted warm via a 0.6 green factor over a constant dark blue floor. In-set
// pixels take the cap's ramp value like any late escape, so the set interior
// is not visually distinguished from deep boundary pixels.
func Palette(n, maxIter int) color.RGBA {
	return rampColor(float64(n) / float64(maxIter))
}

// PaletteSmooth is Palette over a fractional escape count, used by the
// snapshot tool to avoid banding between iteration levels.
func PaletteSmooth(mu float64, maxIter int) color.RGBA {
	t := mu / float64(maxIter)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rampColor(t)
}

func rampColor(t float64) color.RGBA {
	level := t*0.8 + 0.1
	return color.RGBA{
		R: channel(level),
		G: channel(level * 0.6),
		B: channel(0.1),
		A: 255,
	}
}

func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}
