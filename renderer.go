package progressbar

import (
	"fmt"
	"image"

	"github.com/gogpu/progressbar/surface"
)

// FillRenderer is implemented by each bar shape. The widget holds exactly one
// and calls it once per value change.
type FillRenderer interface {
	// ComputeFillUpdate returns the fill-axis run to repaint for a change
	// between two bare ratios.
	ComputeFillUpdate(oldRatio, newRatio float64) FillUpdate

	// Update returns the fill-axis run to repaint for a change between two
	// samples.
	Update(old, next Sample) FillUpdate

	// Render paints the update through s and returns the number of
	// fill-axis lines touched.
	Render(s surface.Surface, old, next Sample) int
}

// Geometry is the pixel layout of a bar: its outer size and the two insets
// between the outer edge and the fillable interior.
type Geometry struct {
	Width           int
	Height          int
	BorderThickness int
	MarginSize      int
}

// Inset returns the distance from an outer edge to the interior.
func (g Geometry) Inset() int {
	return g.BorderThickness + g.MarginSize
}

// FillWidth returns the interior width.
func (g Geometry) FillWidth() int {
	return g.Width - 2*g.Inset()
}

// FillHeight returns the interior height.
func (g Geometry) FillHeight() int {
	return g.Height - 2*g.Inset()
}

// Interior returns the fillable rectangle in widget coordinates.
func (g Geometry) Interior() image.Rectangle {
	in := g.Inset()
	return image.Rect(in, in, g.Width-in, g.Height-in)
}

// Validate checks that the insets are non-negative and leave at least one
// interior pixel on each axis.
func (g Geometry) Validate() error {
	if g.BorderThickness < 0 || g.MarginSize < 0 {
		return fmt.Errorf("%w: border %d, margin %d must be >= 0",
			ErrInvalidGeometry, g.BorderThickness, g.MarginSize)
	}
	if g.FillWidth() < 1 || g.FillHeight() < 1 {
		return fmt.Errorf("%w: %dx%d widget with inset %d has no interior",
			ErrInvalidGeometry, g.Width, g.Height, g.Inset())
	}
	return nil
}

// Horizontal fills along x. LeftToRight maps the fill axis directly onto
// pixel columns; RightToLeft mirrors it.
type Horizontal struct {
	engine     *FillEngine
	crossStart int
	crossLen   int
}

var _ FillRenderer = (*Horizontal)(nil)

// NewHorizontal creates a horizontal strategy. Vertical directions are
// treated as LeftToRight.
func NewHorizontal(g Geometry, dir Direction) *Horizontal {
	return &Horizontal{
		engine:     NewFillEngine(g.FillWidth(), g.Inset(), g.Width, dir == RightToLeft),
		crossStart: g.Inset(),
		crossLen:   g.FillHeight(),
	}
}

// Engine returns the underlying fill engine.
func (h *Horizontal) Engine() *FillEngine { return h.engine }

// ComputeFillUpdate implements FillRenderer.
func (h *Horizontal) ComputeFillUpdate(oldRatio, newRatio float64) FillUpdate {
	return h.engine.ComputeFillUpdate(oldRatio, newRatio)
}

// Update implements FillRenderer.
func (h *Horizontal) Update(old, next Sample) FillUpdate {
	return h.engine.Update(old, next)
}

// Render implements FillRenderer.
func (h *Horizontal) Render(s surface.Surface, old, next Sample) int {
	u := h.Update(old, next)
	paintColumns(s, u, h.crossStart, h.crossLen)
	return u.Len()
}

// Vertical fills along y. Pixel y grows downward, so BottomToTop is the
// mirrored mapping and TopToBottom the direct one.
type Vertical struct {
	engine     *FillEngine
	crossStart int
	crossLen   int
}

var _ FillRenderer = (*Vertical)(nil)

// NewVertical creates a vertical strategy. Horizontal directions are
// treated as BottomToTop.
func NewVertical(g Geometry, dir Direction) *Vertical {
	return &Vertical{
		engine:     NewFillEngine(g.FillHeight(), g.Inset(), g.Height, dir != TopToBottom),
		crossStart: g.Inset(),
		crossLen:   g.FillWidth(),
	}
}

// Engine returns the underlying fill engine.
func (v *Vertical) Engine() *FillEngine { return v.engine }

// ComputeFillUpdate implements FillRenderer.
func (v *Vertical) ComputeFillUpdate(oldRatio, newRatio float64) FillUpdate {
	return v.engine.ComputeFillUpdate(oldRatio, newRatio)
}

// Update implements FillRenderer.
func (v *Vertical) Update(old, next Sample) FillUpdate {
	return v.engine.Update(old, next)
}

// Render implements FillRenderer.
func (v *Vertical) Render(s surface.Surface, old, next Sample) int {
	u := v.Update(old, next)
	paintRows(s, u, v.crossStart, v.crossLen)
	return u.Len()
}

func paintColumns(s surface.Surface, u FillUpdate, crossStart, crossLen int) {
	for x := range u.Coords() {
		for y := crossStart; y < crossStart+crossLen; y++ {
			s.SetPixel(x, y, u.Index)
		}
	}
}

func paintRows(s surface.Surface, u FillUpdate, crossStart, crossLen int) {
	for y := range u.Coords() {
		for x := crossStart; x < crossStart+crossLen; x++ {
			s.SetPixel(x, y, u.Index)
		}
	}
}
