// snapshot renders one Mandelbrot view to a PNG file, without any window or
// server. Views can be given as a named landmark or as explicit coordinates.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	out := flag.String("out", "mandel.png", "output file name")
	size := flag.String("size", "1920x1080", "image size, WxH")
	region := flag.String("region", "", "named landmark to frame (seahorse, elephant, ...); overrides x/y/range")
	x := flag.Float64("x", 0, "view center, real axis")
	y := flag.Float64("y", 0, "view center, imaginary axis")
	rng := flag.Float64("range", mandelview.DefaultRange, "imaginary-axis height of the view window")
	iter := flag.Int("iter", 1000, "iteration cap")
	radius := flag.Float64("radius", mandelview.DefaultEscapeRadius, "escape radius")
	workers := flag.Int("workers", 0, "render workers (0 = CPU count)")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		return err
	}

	view := mandelview.NewViewState()
	view.SetAspect(w, h)
	view.SetMaxIter(*iter)
	view.SetEscapeRadius(*radius)
	if *region != "" {
		r, ok := mandelview.Landmarks[*region]
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		view.GoTo(r)
	} else {
		view.Center = complex(*x, *y)
		view.Range = *rng
	}

	var pool *render.Pool
	if *workers > 0 {
		pool = render.NewWithWorkers(*workers)
	} else {
		pool = render.New()
	}

	log.Printf("rendering %dx%d at iter=%d...", w, h, view.MaxIter)
	start := time.Now()
	img, err := pool.FrameSmooth(context.Background(), *view, w, h)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("render took %s", time.Since(start))

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("image saved to %q", *out)
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
