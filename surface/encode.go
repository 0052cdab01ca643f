// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned when an output format is not recognized.
var ErrUnsupportedFormat = errors.New("surface: unsupported format")

// EncodePNG writes the resolved surface as PNG.
func (s *Indexed) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Snapshot())
}

// EncodeBMP writes the resolved surface as BMP, the format most
// microcontroller image loaders accept.
func (s *Indexed) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, s.Snapshot())
}

// Scale upscales img by an integer factor using nearest-neighbour sampling,
// which keeps single-pixel bar edges crisp in previews. Factors below 2
// return a plain copy.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Encode writes img in the named format ("png" or "bmp").
func Encode(w io.Writer, img image.Image, format string) error {
	enc, err := encoderFor(format)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// Save writes img to path, picking the format from the file extension.
// An unsupported extension fails before the file is created.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}
	if err := enc(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encoderFor(format string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
