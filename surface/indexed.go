// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Indexed is a palette-indexed framebuffer: one byte per pixel, resolved to
// colors through its Palette only when a snapshot is taken.
//
// Every SetPixel that changes a value marks the containing tile dirty, so a
// display driver can push only the region that changed since the last flush.
//
// Example:
//
//	s, _ := surface.NewIndexed(32, 180, surface.NewPalette(3))
//	s.FillRect(s.Bounds(), 0)
//	s.SetPixel(4, 100, 2)
//	img := s.Snapshot()
type Indexed struct {
	width   int
	height  int
	pix     []uint8
	palette *Palette
	dirty   *DirtyRegion
}

var _ Paletted = (*Indexed)(nil)

// NewIndexed creates a surface of the given size with every pixel at index 0.
// A nil palette is replaced by an empty one.
func NewIndexed(width, height int, palette *Palette) (*Indexed, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if palette == nil {
		palette = NewPalette(0)
	}
	return &Indexed{
		width:   width,
		height:  height,
		pix:     make([]uint8, width*height),
		palette: palette,
		dirty:   NewDirtyRegion(width, height),
	}, nil
}

// Width returns the surface width.
func (s *Indexed) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *Indexed) Height() int {
	return s.height
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Indexed) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Palette returns the palette. It is shared, not copied.
func (s *Indexed) Palette() *Palette {
	return s.palette
}

// Pix returns the raw index buffer in row-major order.
func (s *Indexed) Pix() []uint8 {
	return s.pix
}

// SetPixel stores index at (x, y). Out-of-bounds writes are ignored.
func (s *Indexed) SetPixel(x, y int, index uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	if s.pix[i] == index {
		return
	}
	s.pix[i] = index
	s.dirty.Mark(x, y)
}

// PixelAt returns the index at (x, y), or 0 when out of bounds.
func (s *Indexed) PixelAt(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

// FillRect sets every pixel of r (clipped to the surface) to index.
func (s *Indexed) FillRect(r image.Rectangle, index uint8) {
	r = r.Intersect(s.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = index
		}
	}
	s.dirty.MarkRect(r)
}

// Count returns how many pixels hold index inside r.
func (s *Indexed) Count(r image.Rectangle, index uint8) int {
	r = r.Intersect(s.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.pix[y*s.width+x] == index {
				n++
			}
		}
	}
	return n
}

// Dirty returns the pixel rectangle changed since the last ClearDirty.
func (s *Indexed) Dirty() image.Rectangle {
	return s.dirty.Bounds()
}

// DirtyRegion exposes the tile tracker.
func (s *Indexed) DirtyRegion() *DirtyRegion {
	return s.dirty
}

// ClearDirty marks the whole surface clean.
func (s *Indexed) ClearDirty() {
	s.dirty.Clear()
}

// Snapshot resolves the surface through its palette into a new image.
// Transparent entries become zero alpha.
func (s *Indexed) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	lut := s.lookup()
	for i, idx := range s.pix {
		c := lut[idx]
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}

// Draw composites the surface onto dst with its top-left corner at at.
// Transparent palette entries let dst show through.
func (s *Indexed) Draw(dst xdraw.Image, at image.Point) {
	src := s.Snapshot()
	r := src.Bounds().Add(at)
	xdraw.Draw(dst, r, src, image.Point{}, xdraw.Over)
}

// lookup resolves all 256 possible indices once per snapshot.
func (s *Indexed) lookup() [256]color.NRGBA {
	var lut [256]color.NRGBA
	for i := 0; i < s.palette.Len() && i < len(lut); i++ {
		lut[i] = s.palette.RGBA(i)
	}
	return lut
}
