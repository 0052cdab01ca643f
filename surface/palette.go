// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image/color"

// Palette maps palette indices to colors.
//
// Entries can be marked transparent without losing their color, which lets a
// widget toggle its background on and off without remembering the old value.
// Indices outside the palette are ignored by setters and resolve to fully
// transparent black.
type Palette struct {
	colors      []color.Color
	transparent []bool
}

// NewPalette creates a palette with n entries, all opaque black.
func NewPalette(n int) *Palette {
	if n < 0 {
		n = 0
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = color.Black
	}
	return &Palette{
		colors:      colors,
		transparent: make([]bool, n),
	}
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Set stores a color at index i. A nil color is stored as opaque black.
func (p *Palette) Set(i int, c color.Color) {
	if i < 0 || i >= len(p.colors) {
		return
	}
	if c == nil {
		c = color.Black
	}
	p.colors[i] = c
}

// At returns the color stored at index i, ignoring transparency.
func (p *Palette) At(i int) color.Color {
	if i < 0 || i >= len(p.colors) {
		return color.Transparent
	}
	return p.colors[i]
}

// SetTransparent marks entry i as transparent.
func (p *Palette) SetTransparent(i int) {
	if i < 0 || i >= len(p.transparent) {
		return
	}
	p.transparent[i] = true
}

// SetOpaque marks entry i as opaque.
func (p *Palette) SetOpaque(i int) {
	if i < 0 || i >= len(p.transparent) {
		return
	}
	p.transparent[i] = false
}

// IsTransparent reports whether entry i is transparent.
// Indices outside the palette are transparent.
func (p *Palette) IsTransparent(i int) bool {
	if i < 0 || i >= len(p.transparent) {
		return true
	}
	return p.transparent[i]
}

// RGBA resolves entry i to a non-premultiplied color, honoring transparency.
func (p *Palette) RGBA(i int) color.NRGBA {
	if p.IsTransparent(i) {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(p.colors[i]).(color.NRGBA)
}
