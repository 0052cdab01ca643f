// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the indexed pixel framebuffer that progress bars
// render into.
//
// Small embedded displays are usually driven from a palette-indexed bitmap:
// every pixel stores a small palette index, and the palette maps indices to
// colors only when the frame is pushed to the panel. The package mirrors that
// model:
//
//   - Surface: the minimal pixel-grid interface the renderers write through
//   - Palette: color entries with per-entry transparency
//   - Indexed: a uint8 grid implementing Surface, with dirty-tile tracking
//   - View: a clipped window onto a larger surface, for shared displays
//   - RGB565: a panel-side buffer fed from the dirty region of an Indexed
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, x grows to the right and y grows down.
//
// # Usage
//
//	pal := surface.NewPalette(3)
//	pal.Set(2, color.RGBA{0, 255, 0, 255})
//
//	s, err := surface.NewIndexed(180, 40, pal)
//	if err != nil {
//	    return err
//	}
//	s.SetPixel(10, 10, 2)
//
//	// Push only what changed since the last refresh.
//	panel := surface.NewRGB565(180, 40)
//	panel.Flush(s)
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
