// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// Surface is the pixel grid a renderer writes palette indices into.
//
// Implementations must treat out-of-bounds coordinates as a no-op for
// SetPixel and return 0 from PixelAt. Renderers never rely on either, but
// callers that compose several widgets onto one surface may.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetPixel stores a palette index at (x, y).
	SetPixel(x, y int, index uint8)

	// PixelAt returns the palette index stored at (x, y).
	PixelAt(x, y int) uint8
}

// Paletted is an optional interface for surfaces that own their palette.
type Paletted interface {
	Surface

	// Palette returns the palette used to resolve indices to colors.
	Palette() *Palette
}
