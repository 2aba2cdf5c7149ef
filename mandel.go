// Package mandelview holds the view-state model and escape-time math for an
// interactive Mandelbrot viewer. Everything in this package is pure: the
// platform front ends (desktop window, web server, WASM client) live under
// cmd/ and the pixel loop lives in the render package.
package mandelview

import (
	"math"
	"math/cmplx"
)

// Iterate runs the escape-time iteration z <- z*z + c starting from z = 0 and
// returns the 0-based index of the iteration on which |z| first exceeded
// escapeRadius. The comparison is strictly greater-than, so a point landing
// exactly on the radius keeps iterating. Points that never escape within
// maxIter iterations return maxIter and count as inside the set.
func Iterate(c complex128, maxIter int, escapeRadius float64) int {
	var z complex128
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if cmplx.Abs(z) > escapeRadius {
			return i
		}
	}
	return maxIter
}

// IterateSmooth is Iterate with a fractional escape count, which removes the
// visible banding between iteration levels. Used by the offline snapshot tool;
// the interactive palette sticks to the integer count.
func IterateSmooth(c complex128, maxIter int, escapeRadius float64) float64 {
	var z complex128
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if cmplx.Abs(z) > escapeRadius {
			return float64(i) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Log(2)
		}
	}
	return float64(maxIter)
}

// Region is an axis-aligned window in the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center returns the midpoint of the region.
func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// Width returns the real-axis extent of the region.
func (r Region) Width() float64 {
	return r.Xmax - r.Xmin
}

// Classic regions / landmarks in the Mandelbrot set, usable as starting views
// for the snapshot tool and the viewers.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmarks maps region names to their definitions, for lookup by CLI flags.
var Landmarks = map[string]Region{
	"seahorse":     SeahorseValley,
	"elephant":     ElephantValley,
	"minibrot":     SpiralMinibrot,
	"triplespiral": TripleSpiral,
	"dragon":       ValleyOfTheDragon,
	"minispiral":   MinibrotInMiniSpiral,
}
