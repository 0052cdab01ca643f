// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math/bits"
)

// Tile dimensions used for dirty tracking. Eight rows match the page height
// of common monochrome OLED controllers.
const (
	TileWidth  = 8
	TileHeight = 8
)

// DirtyRegion tracks which tiles of a surface changed since the last flush.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per
// word). Bit index = ty*tilesX + tx.
type DirtyRegion struct {
	words  []uint64
	width  int
	height int
	tilesX int
	tilesY int
}

// NewDirtyRegion creates a tracker for a surface of the given pixel size.
// All tiles start clean. Returns nil if dimensions are invalid.
func NewDirtyRegion(width, height int) *DirtyRegion {
	if width <= 0 || height <= 0 {
		return nil
	}
	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight
	return &DirtyRegion{
		words:  make([]uint64, (tilesX*tilesY+63)/64),
		width:  width,
		height: height,
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// TilesX returns the number of tile columns.
func (d *DirtyRegion) TilesX() int { return d.tilesX }

// TilesY returns the number of tile rows.
func (d *DirtyRegion) TilesY() int { return d.tilesY }

// Mark marks the tile containing pixel (x, y) as dirty.
// Does nothing if the pixel is out of bounds.
func (d *DirtyRegion) Mark(x, y int) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.markTile(x/TileWidth, y/TileHeight)
}

func (d *DirtyRegion) markTile(tx, ty int) {
	idx := ty*d.tilesX + tx
	d.words[idx/64] |= 1 << (idx & 63)
}

// MarkRect marks every tile intersecting r (pixel space) as dirty.
func (d *DirtyRegion) MarkRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}
	tx1, ty1 := r.Min.X/TileWidth, r.Min.Y/TileHeight
	tx2, ty2 := (r.Max.X-1)/TileWidth, (r.Max.Y-1)/TileHeight
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.markTile(tx, ty)
		}
	}
}

// MarkAll marks all tiles as dirty.
func (d *DirtyRegion) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		d.words[full] = (uint64(1) << rem) - 1
	}
}

// Clear marks all tiles clean.
func (d *DirtyRegion) Clear() {
	clear(d.words)
}

// IsDirty reports whether tile (tx, ty) is dirty.
// Returns false for out-of-bounds tiles.
func (d *DirtyRegion) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64]&(1<<(idx&63)) != 0
}

// IsEmpty reports whether no tile is dirty.
func (d *DirtyRegion) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty tiles.
func (d *DirtyRegion) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEachDirty calls fn for each dirty tile in row-major order without
// clearing the flags.
func (d *DirtyRegion) ForEachDirty(fn func(tx, ty int)) {
	if fn == nil {
		return
	}
	for wi, word := range d.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			idx := wi*64 + bit
			fn(idx%d.tilesX, idx/d.tilesX)
			word &^= 1 << bit
		}
	}
}

// Bounds returns the smallest pixel rectangle covering every dirty tile,
// clipped to the surface. Returns the empty rectangle when clean.
func (d *DirtyRegion) Bounds() image.Rectangle {
	var r image.Rectangle
	d.ForEachDirty(func(tx, ty int) {
		tile := image.Rect(tx*TileWidth, ty*TileHeight, (tx+1)*TileWidth, (ty+1)*TileHeight)
		r = r.Union(tile)
	})
	return r.Intersect(image.Rect(0, 0, d.width, d.height))
}
