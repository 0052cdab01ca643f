// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// RGB565 is a panel-side framebuffer in little-endian RGB565, the format
// most SPI TFT controllers accept.
//
// The buffer is kept in sync with an Indexed surface by Flush, which only
// converts the dirty region, so the cost of a refresh follows the size of the
// last value change rather than the size of the widget.
type RGB565 struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565 allocates a w x h target.
func NewRGB565(w, h int) *RGB565 {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGB565{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
	}
}

// Size returns the target dimensions.
func (t *RGB565) Size() (w, h int) { return t.W, t.H }

// Flush converts the dirty region of s into the buffer, clears the dirty
// flags and returns the rectangle that was pushed.
func (t *RGB565) Flush(s *Indexed) image.Rectangle {
	r := s.Dirty().Intersect(image.Rect(0, 0, t.W, t.H))
	if r.Empty() {
		s.ClearDirty()
		return image.Rectangle{}
	}
	lut := s.lookup()
	var packed [256]uint16
	for i := range lut {
		packed[i] = rgb565From888(lut[i].R, lut[i].G, lut[i].B)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t.put(x, y, packed[s.pix[y*s.width+x]])
		}
	}
	s.ClearDirty()
	return r
}

// FlushImage converts region r of img into the buffer.
func (t *RGB565) FlushImage(img image.Image, r image.Rectangle) {
	r = r.Intersect(img.Bounds()).Intersect(image.Rect(0, 0, t.W, t.H))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			t.put(x, y, rgb565From888(c.R, c.G, c.B))
		}
	}
}

// PixelAt returns the packed RGB565 value at (x, y), or 0 when out of bounds.
func (t *RGB565) PixelAt(x, y int) uint16 {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

func (t *RGB565) put(x, y int, p uint16) {
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}
