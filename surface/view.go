// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// View is a rectangular window onto a parent surface. Coordinates are
// relative to the window's top-left corner and writes outside the window are
// dropped, so a widget rendering through a View cannot touch its neighbours.
type View struct {
	parent Surface
	r      image.Rectangle
}

var _ Surface = (*View)(nil)

// NewView returns a view of r (in parent coordinates), clipped to the parent.
func NewView(parent Surface, r image.Rectangle) *View {
	return &View{
		parent: parent,
		r:      r.Intersect(image.Rect(0, 0, parent.Width(), parent.Height())),
	}
}

// Width returns the window width.
func (v *View) Width() int { return v.r.Dx() }

// Height returns the window height.
func (v *View) Height() int { return v.r.Dy() }

// Origin returns the window's top-left corner in parent coordinates.
func (v *View) Origin() image.Point { return v.r.Min }

// SetPixel writes through to the parent.
func (v *View) SetPixel(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= v.r.Dx() || y >= v.r.Dy() {
		return
	}
	v.parent.SetPixel(v.r.Min.X+x, v.r.Min.Y+y, index)
}

// PixelAt reads from the parent.
func (v *View) PixelAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= v.r.Dx() || y >= v.r.Dy() {
		return 0
	}
	return v.parent.PixelAt(v.r.Min.X+x, v.r.Min.Y+y)
}

// Palette returns the parent's palette, or nil if the parent has none.
func (v *View) Palette() *Palette {
	if p, ok := v.parent.(Paletted); ok {
		return p.Palette()
	}
	return nil
}
