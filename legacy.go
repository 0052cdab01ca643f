package progressbar

import (
	"math"

	"github.com/gogpu/progressbar/surface"
)

// legacyMargin is the fixed margin between the legacy outline and the fill.
const legacyMargin = 1

// Legacy is the first-generation left-to-right bar. Instead of stepping
// extents through a FillEngine it maps each ratio straight to an absolute
// pixel column, the first unfilled one:
//
//	inset + floor(interiorWidth * ratio)
//
// where inset is the outline stroke plus the 1px margin. It leaves exactly
// the pixels Horizontal would leave for the same stroke and a 1px margin.
type Legacy struct {
	width  int
	height int
	inset  int
}

var _ FillRenderer = (*Legacy)(nil)

// NewLegacyRenderer creates the legacy strategy for a widget of the given
// outer size and outline stroke.
func NewLegacyRenderer(width, height, stroke int) *Legacy {
	return &Legacy{width: width, height: height, inset: stroke + legacyMargin}
}

// column returns the first unfilled column for s.
func (l *Legacy) column(s Sample) int {
	first, last := l.inset, l.width-l.inset-1
	if last < first {
		return first
	}
	ratio := s.Ratio
	if math.IsNaN(ratio) {
		ratio = 0
	}
	col := first + int(math.Floor(float64(last-first+1)*ratio))
	col = min(max(col, first), last+1)
	if col == first && s.AboveMin {
		col++
	}
	if col == last+1 && s.BelowMax {
		col--
	}
	return col
}

// ComputeFillUpdate implements FillRenderer.
func (l *Legacy) ComputeFillUpdate(oldRatio, newRatio float64) FillUpdate {
	return l.Update(RatioSample(oldRatio), RatioSample(newRatio))
}

// Update implements FillRenderer.
func (l *Legacy) Update(old, next Sample) FillUpdate {
	prev, col := l.column(old), l.column(next)
	if col < prev {
		return FillUpdate{From: prev - 1, To: col - 1, Step: -1, Index: IndexBackground}
	}
	return FillUpdate{From: prev, To: col, Step: 1, Index: IndexBar}
}

// Render implements FillRenderer.
func (l *Legacy) Render(s surface.Surface, old, next Sample) int {
	u := l.Update(old, next)
	paintColumns(s, u, l.inset, l.height-2*l.inset)
	return u.Len()
}
