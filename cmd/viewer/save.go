package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ncruces/zenity"
)

// savePNG asks for a destination via a native file dialog and writes the
// given frame there. A cancelled dialog is not an error.
func savePNG(img *image.RGBA) error {
	if img == nil {
		return errors.New("no frame rendered yet")
	}

	filename, err := zenity.SelectFileSave(
		zenity.Title("Save image"),
		zenity.Filename("mandelbrot.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
