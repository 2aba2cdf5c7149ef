package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

// main is the entry point for the Mandelbrot view server. It serves the
// static browser client and runs one rendering session per websocket
// connection; the browser only forwards input events and blits frames.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http listen port")
	staticDir := flag.String("static", "./static", "directory with index.html and the wasm client")
	workers := flag.Int("workers", 0, "render workers per frame (0 = CPU count)")
	maxRange := flag.Float64("max-range", 16, "zoom-out bound on the view range (0 disables the clamp)")
	region := flag.String("region", "", "start sessions framed on a named landmark (seahorse, elephant, ...)")
	flag.Parse()

	cfg := sessionConfig{maxRange: *maxRange}
	if *workers > 0 {
		cfg.pool = render.NewWithWorkers(*workers)
	} else {
		cfg.pool = render.New()
	}
	if *region != "" {
		r, ok := mandelview.Landmarks[*region]
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		cfg.start = &r
	}

	srv := webServer(*port, *staticDir, cfg)

	log.Printf("serving viewer on http://localhost:%d", *port)
	return srv.ListenAndServe()
}
