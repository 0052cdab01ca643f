package progressbar

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/progressbar/surface"
)

// paletteSize is the number of palette entries a bar uses:
// IndexBackground, IndexOutline and IndexBar.
const paletteSize = 3

// Bar is a progress-bar widget: a value model, a fill strategy and the
// surface it renders into.
//
// On creation the bar paints its border and margin and then renders as if
// the value had moved from the range minimum to the initial value. Every
// later SetValue repaints only the pixels between the old and new fill
// boundary.
//
// Bar is not safe for concurrent use.
type Bar struct {
	name      string
	pos       image.Point
	geom      Geometry
	direction Direction
	model     *Model
	renderer  FillRenderer
	surface   surface.Surface
	palette   *surface.Palette

	barColor     color.Color
	outlineColor color.Color
	fillColor    color.Color
}

// New creates a bar at (x, y) with the given outer size.
//
// It fails with *InvalidRangeError for an empty range, with an error wrapping
// ErrInvalidGeometry when border and margin leave no interior, and, in strict
// mode, with *OutOfRangeError for an initial value outside the range.
func New(x, y, width, height int, opts ...Option) (*Bar, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	geom := Geometry{Width: width, Height: height, BorderThickness: o.border, MarginSize: o.margin}
	var renderer FillRenderer
	if o.direction.Vertical() {
		renderer = NewVertical(geom, o.direction)
	} else {
		renderer = NewHorizontal(geom, o.direction)
	}
	return newBar(x, y, geom, renderer, o)
}

// NewLegacy creates the first-generation single-direction bar: a [0.0, 1.0]
// strict range filling left to right, with a 1px margin inside the outline.
// WithBorderThickness sets the outline stroke (default 1). Options for range,
// value, mode, direction and margin are overridden.
func NewLegacy(x, y, width, height int, progress float64, opts ...Option) (*Bar, error) {
	o := defaultOptions()
	o.outlineColor = RGB24(0xAAAAAA)
	for _, opt := range opts {
		opt(&o)
	}
	o.min, o.max = 0, 1
	o.mode = Strict
	o.direction = LeftToRight
	o.value = &progress
	o.margin = legacyMargin

	geom := Geometry{Width: width, Height: height, BorderThickness: o.border, MarginSize: o.margin}
	return newBar(x, y, geom, NewLegacyRenderer(width, height, o.border), o)
}

func newBar(x, y int, geom Geometry, renderer FillRenderer, o options) (*Bar, error) {
	rng, err := NewRange(o.min, o.max)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	initial := rng.Min
	if o.value != nil {
		initial = *o.value
	}
	model, err := NewModel(rng, o.mode, initial)
	if err != nil {
		return nil, err
	}

	b := &Bar{
		name:         o.name,
		pos:          image.Pt(x, y),
		geom:         geom,
		direction:    o.direction,
		model:        model,
		renderer:     renderer,
		barColor:     o.barColor,
		outlineColor: o.outlineColor,
		fillColor:    o.fillColor,
	}

	if o.surface != nil {
		if o.surface.Width() < geom.Width || o.surface.Height() < geom.Height {
			return nil, fmt.Errorf("%w: surface %dx%d smaller than bar %dx%d",
				ErrInvalidGeometry, o.surface.Width(), o.surface.Height(), geom.Width, geom.Height)
		}
		b.surface = o.surface
		if p, ok := o.surface.(surface.Paletted); ok {
			b.palette = p.Palette()
		}
	} else {
		b.palette = surface.NewPalette(paletteSize)
		s, err := surface.NewIndexed(geom.Width, geom.Height, b.palette)
		if err != nil {
			return nil, fmt.Errorf("progressbar: allocate surface: %w", err)
		}
		b.surface = s
	}

	b.applyPalette()
	b.drawFrame()
	n := b.renderer.Render(b.surface, rng.Sample(rng.Min), rng.Sample(model.Value()))
	Logger().Debug("progressbar: initial render",
		"bar", b.name, "value", model.Value(), "lines", n)
	return b, nil
}

func (b *Bar) applyPalette() {
	if b.palette == nil {
		return
	}
	b.palette.Set(int(IndexOutline), b.outlineColor)
	b.palette.Set(int(IndexBar), b.barColor)
	b.SetFillColor(b.fillColor)
}

// drawFrame paints the border with IndexOutline and everything inside it,
// margin and interior, with IndexBackground.
func (b *Bar) drawFrame() {
	w, h, t := b.geom.Width, b.geom.Height, b.geom.BorderThickness
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := IndexBackground
			if x < t || y < t || x >= w-t || y >= h-t {
				idx = IndexOutline
			}
			b.surface.SetPixel(x, y, idx)
		}
	}
}

// SetValue assigns v and renders the change before returning.
//
// In strict mode a value outside the range fails with *OutOfRangeError and
// leaves both value and pixels untouched. In clamp mode v is limited to the
// range; read the stored value back with Value.
func (b *Bar) SetValue(v float64) error {
	old, applied, err := b.model.SetValue(v)
	if err != nil {
		Logger().Warn("progressbar: value rejected", "bar", b.name, "value", v, "err", err)
		return err
	}
	rng := b.model.Range()
	n := b.renderer.Render(b.surface, rng.Sample(old), rng.Sample(applied))
	Logger().Debug("progressbar: render",
		"bar", b.name, "old", old, "new", applied, "lines", n)
	return nil
}

// Value returns the current value.
func (b *Bar) Value() float64 { return b.model.Value() }

// Ratio returns the current value normalized to [0, 1].
func (b *Bar) Ratio() float64 { return b.model.Ratio() }

// SetProgress is the legacy name of SetValue.
func (b *Bar) SetProgress(v float64) error { return b.SetValue(v) }

// Progress is the legacy name of Value.
func (b *Bar) Progress() float64 { return b.Value() }

// Range returns the displayed range.
func (b *Bar) Range() Range { return b.model.Range() }

// Minimum returns the range minimum.
func (b *Bar) Minimum() float64 { return b.model.Range().Min }

// Maximum returns the range maximum.
func (b *Bar) Maximum() float64 { return b.model.Range().Max }

// Mode returns the assignment policy.
func (b *Bar) Mode() Mode { return b.model.Mode() }

// Name returns the label set with WithName.
func (b *Bar) Name() string { return b.name }

// Position returns the top-left corner on the display.
func (b *Bar) Position() image.Point { return b.pos }

// Size returns the outer width and height.
func (b *Bar) Size() (width, height int) { return b.geom.Width, b.geom.Height }

// Geometry returns the pixel layout.
func (b *Bar) Geometry() Geometry { return b.geom }

// FillWidth returns the interior width.
func (b *Bar) FillWidth() int { return b.geom.FillWidth() }

// FillHeight returns the interior height.
func (b *Bar) FillHeight() int { return b.geom.FillHeight() }

// Direction returns the fill direction.
func (b *Bar) Direction() Direction { return b.direction }

// Renderer returns the fill strategy.
func (b *Bar) Renderer() FillRenderer { return b.renderer }

// Surface returns the surface the bar renders into.
func (b *Bar) Surface() surface.Surface { return b.surface }

// BarColor returns the fill color.
func (b *Bar) BarColor() color.Color { return b.barColor }

// OutlineColor returns the border color.
func (b *Bar) OutlineColor() color.Color { return b.outlineColor }

// FillColor returns the background color, or nil when transparent.
func (b *Bar) FillColor() color.Color { return b.fillColor }

// SetFillColor changes the background color. Nil makes it transparent.
// Only the palette changes; no pixel is rewritten.
func (b *Bar) SetFillColor(c color.Color) {
	b.fillColor = c
	if b.palette == nil {
		return
	}
	if c == nil {
		b.palette.SetTransparent(int(IndexBackground))
		return
	}
	b.palette.Set(int(IndexBackground), c)
	b.palette.SetOpaque(int(IndexBackground))
}

// FilledPixels counts interior pixels painted with IndexBar along the fill
// axis, i.e. the displayed extent.
func (b *Bar) FilledPixels() int {
	in := b.geom.Interior()
	n := 0
	if b.direction.Vertical() {
		for y := in.Min.Y; y < in.Max.Y; y++ {
			if b.surface.PixelAt(in.Min.X, y) == IndexBar {
				n++
			}
		}
		return n
	}
	for x := in.Min.X; x < in.Max.X; x++ {
		if b.surface.PixelAt(x, in.Min.Y) == IndexBar {
			n++
		}
	}
	return n
}
