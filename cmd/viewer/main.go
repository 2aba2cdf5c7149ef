// viewer is the desktop front end of the Mandelbrot viewer: an interactive
// window with mouse, wheel and touch navigation plus on-screen controls for
// the iteration cap and escape radius.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	size := flag.String("size", "1280x720", "initial window size, WxH")
	workers := flag.Int("workers", 0, "render workers per frame (0 = CPU count)")
	maxRange := flag.Float64("max-range", 16, "zoom-out bound on the view range (0 disables the clamp)")
	region := flag.String("region", "", "start framed on a named landmark (seahorse, elephant, ...)")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		return err
	}

	view := mandelview.NewViewState()
	view.MaxRange = *maxRange
	view.SetAspect(w, h)
	if *region != "" {
		r, ok := mandelview.Landmarks[*region]
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		view.GoTo(r)
	}

	var pool *render.Pool
	if *workers > 0 {
		pool = render.NewWithWorkers(*workers)
	} else {
		pool = render.New()
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Mandelbrot viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(mandelview.NewController(view), pool, w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}

func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err == nil {
		h, err = strconv.Atoi(parts[1])
	}
	if err != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	return w, h, nil
}
