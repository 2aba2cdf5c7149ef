// Package render evaluates the escape-time function for every pixel of a
// canvas and produces RGBA frames. Pixels are independent, so the canvas is
// split into tiles and the tiles are rendered by a fixed pool of goroutines.
package render

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/juweissenberg/mandelview"
	xdraw "golang.org/x/image/draw"
)

// tileSize is the edge length of the work units handed to the pool.
const tileSize = 64

// Pool renders frames on a fixed number of workers.
type Pool struct {
	workers int
}

// New returns a pool sized to the machine's CPU count.
func New() *Pool {
	return NewWithWorkers(runtime.NumCPU())
}

// NewWithWorkers returns a pool with an explicit worker count.
func NewWithWorkers(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{workers: n}
}

// Frame renders a full w×h frame for the given view snapshot. The view is
// taken by value so input handlers can keep mutating the live ViewState while
// a frame is in flight. Cancelling ctx abandons the frame between tiles and
// returns the context's error.
func (p *Pool) Frame(ctx context.Context, view mandelview.ViewState, w, h int) (*image.RGBA, error) {
	return p.frame(ctx, view, w, h, renderTile)
}

// FrameSmooth is Frame with the fractional escape count, trading a little
// speed for band-free output. Used by the offline snapshot tool.
func (p *Pool) FrameSmooth(ctx context.Context, view mandelview.ViewState, w, h int) (*image.RGBA, error) {
	return p.frame(ctx, view, w, h, renderTileSmooth)
}

func (p *Pool) frame(ctx context.Context, view mandelview.ViewState, w, h int, fill func(*image.RGBA, mandelview.ViewState, image.Rectangle, int, int)) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	tiles := SplitRect(img.Bounds(), tileSize, tileSize)

	tileCh := make(chan image.Rectangle)
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tileCh {
				if ctx.Err() != nil {
					continue // drain without rendering
				}
				fill(img, view, tile, w, h)
			}
		}()
	}

	for _, tile := range tiles {
		tileCh <- tile
	}
	close(tileCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// Preview renders at 1/scale resolution and upscales to the full canvas. Used
// while a drag or pinch is in progress, where latency matters more than
// detail; the host renders a full Frame once the gesture settles.
func (p *Pool) Preview(ctx context.Context, view mandelview.ViewState, w, h, scale int) (*image.RGBA, error) {
	if scale <= 1 {
		return p.Frame(ctx, view, w, h)
	}
	pw, ph := w/scale, h/scale
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	small, err := p.Frame(ctx, view, pw, ph)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(img, img.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return img, nil
}

// renderTile fills one tile of the shared frame. Tiles are disjoint, so
// workers write without locking. Pixels are sampled at their centers.
func renderTile(img *image.RGBA, view mandelview.ViewState, tile image.Rectangle, w, h int) {
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		v := (float64(py) + 0.5) / float64(h)
		for px := tile.Min.X; px < tile.Max.X; px++ {
			u := (float64(px) + 0.5) / float64(w)
			c := view.PointAt(u, v)
			n := mandelview.Iterate(c, view.MaxIter, view.EscapeRadius)
			img.SetRGBA(px, py, Palette(n, view.MaxIter))
		}
	}
}

func renderTileSmooth(img *image.RGBA, view mandelview.ViewState, tile image.Rectangle, w, h int) {
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		v := (float64(py) + 0.5) / float64(h)
		for px := tile.Min.X; px < tile.Max.X; px++ {
			u := (float64(px) + 0.5) / float64(w)
			c := view.PointAt(u, v)
			mu := mandelview.IterateSmooth(c, view.MaxIter, view.EscapeRadius)
			img.SetRGBA(px, py, PaletteSmooth(mu, view.MaxIter))
		}
	}
}

// SplitRect splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
