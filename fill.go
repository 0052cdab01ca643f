package progressbar

import (
	"iter"
	"math"
)

// Palette indices written by the widget.
const (
	// IndexBackground is the clear index: the margin and the unfilled part
	// of the bar.
	IndexBackground uint8 = 0

	// IndexOutline is the border index.
	IndexOutline uint8 = 1

	// IndexBar is the fill index.
	IndexBar uint8 = 2
)

// PixelWrite is one fill-axis position and the index to paint across the
// whole cross axis at that position.
type PixelWrite struct {
	Coord int
	Index uint8
}

// Sample is a displayed value reduced to what the fill engine needs: its
// ratio within the range, and whether the value lies strictly inside either
// bound. The flags come from the value itself, since the ratio can round to
// exactly 0 or 1 for values next to a bound.
type Sample struct {
	Ratio    float64
	AboveMin bool
	BelowMax bool
}

// RatioSample derives a Sample from a bare ratio.
func RatioSample(ratio float64) Sample {
	return Sample{Ratio: ratio, AboveMin: ratio > 0, BelowMax: ratio < 1}
}

// FillUpdate is the half-open run of fill-axis coordinates a render pass
// repaints: From, From+Step, ... up to but excluding To.
//
// The zero FillUpdate is empty.
type FillUpdate struct {
	From  int
	To    int
	Step  int
	Index uint8
}

// Len returns the number of coordinates in the run.
func (u FillUpdate) Len() int {
	if u.Step == 0 {
		return 0
	}
	return max((u.To-u.From)*u.Step, 0)
}

// Empty reports whether the update touches nothing.
func (u FillUpdate) Empty() bool {
	return u.Len() == 0
}

// Coords yields the fill-axis coordinates in paint order.
func (u FillUpdate) Coords() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, c := 0, u.From; i < u.Len(); i, c = i+1, c+u.Step {
			if !yield(c) {
				return
			}
		}
	}
}

// Writes returns the ordered pixel writes of the update.
func (u FillUpdate) Writes() []PixelWrite {
	out := make([]PixelWrite, 0, u.Len())
	for c := range u.Coords() {
		out = append(out, PixelWrite{Coord: c, Index: u.Index})
	}
	return out
}

// FillEngine turns a ratio change into the minimal FillUpdate along one axis.
//
// The fillable run starts offset pixels into an axis of axisSize pixels and
// is length pixels long. A mirrored engine reflects every coordinate about
// the axis midpoint, so the fill grows from the far end.
type FillEngine struct {
	length   int
	offset   int
	axisSize int
	mirrored bool
}

// NewFillEngine creates an engine. A non-positive length yields an engine
// whose updates are always empty.
func NewFillEngine(length, offset, axisSize int, mirrored bool) *FillEngine {
	return &FillEngine{
		length:   length,
		offset:   offset,
		axisSize: axisSize,
		mirrored: mirrored,
	}
}

// Length returns the number of fillable pixels along the axis.
func (e *FillEngine) Length() int { return e.length }

// Offset returns the inset before the fillable run on the leading side.
func (e *FillEngine) Offset() int { return e.offset }

// Mirrored reports whether coordinates are reflected.
func (e *FillEngine) Mirrored() bool { return e.mirrored }

// Extent returns the number of filled pixels shown for ratio, treating any
// ratio above zero as above the minimum and any ratio below one as below the
// maximum. Callers holding the value should use ExtentOf.
func (e *FillEngine) Extent(ratio float64) int {
	return e.ExtentOf(RatioSample(ratio))
}

// ExtentOf returns the number of filled pixels shown for s.
//
// A sample above the minimum shows at least one pixel, and a sample below the
// maximum leaves at least one pixel empty, even when the ratio rounds to 0 or
// 1. On a one-pixel axis the second rule wins.
func (e *FillEngine) ExtentOf(s Sample) int {
	if e.length <= 0 {
		return 0
	}
	ratio := s.Ratio
	if math.IsNaN(ratio) {
		ratio = 0
	}
	n := int(math.Floor(ratio * float64(e.length)))
	n = min(max(n, 0), e.length)
	if n == 0 && s.AboveMin {
		n = 1
	}
	if n == e.length && s.BelowMax {
		n = e.length - 1
	}
	return n
}

// ComputeFillUpdate returns the run to repaint when the displayed ratio
// changes from oldRatio to newRatio. It is Update with both ratios passed
// through RatioSample.
func (e *FillEngine) ComputeFillUpdate(oldRatio, newRatio float64) FillUpdate {
	return e.Update(RatioSample(oldRatio), RatioSample(newRatio))
}

// Update returns the run to repaint when the displayed sample changes from
// old to next.
//
// Growing paints IndexBar from the old boundary up to the new one; shrinking
// paints IndexBackground from the old boundary back down. The old extent goes
// through the same boundary policy as the new one, so the pixel forced on
// just above the minimum is always cleared when the value returns to it.
func (e *FillEngine) Update(old, next Sample) FillUpdate {
	if e.length <= 0 {
		return FillUpdate{}
	}
	oldExtent := e.ExtentOf(old)
	newExtent := e.ExtentOf(next)

	u := FillUpdate{
		From:  e.offset + oldExtent,
		To:    e.offset + newExtent,
		Step:  1,
		Index: IndexBar,
	}
	if newExtent < oldExtent {
		u = FillUpdate{
			From:  e.offset + oldExtent - 1,
			To:    e.offset + newExtent - 1,
			Step:  -1,
			Index: IndexBackground,
		}
	}

	if e.mirrored {
		ref := e.axisSize - 1
		u.From, u.To = ref-u.From, ref-u.To
		u.Step = -u.Step
	}
	return u
}
