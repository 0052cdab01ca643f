package progressbar

import (
	"image/color"

	"github.com/gogpu/progressbar/surface"
)

// Option configures a Bar during creation.
//
// Example:
//
//	// Fahrenheit thermometer filling from the right
//	bar, err := progressbar.New(10, 140, 180, 40,
//	    progressbar.WithRange(-40, 130),
//	    progressbar.WithDirection(progressbar.RightToLeft),
//	    progressbar.WithBarColor(progressbar.RGB24(0xFF0000)),
//	)
type Option func(*options)

// options holds optional configuration for Bar creation.
type options struct {
	min, max     float64
	value        *float64
	mode         Mode
	direction    Direction
	border       int
	margin       int
	barColor     color.Color
	outlineColor color.Color
	fillColor    color.Color
	surface      surface.Surface
	name         string
}

// defaultOptions returns the widget defaults: a 0..100
// clamping range, 1px border and margin, green bar, white outline and dark
// grey background.
func defaultOptions() options {
	return options{
		min:          0,
		max:          100,
		mode:         Clamp,
		direction:    LeftToRight,
		border:       1,
		margin:       1,
		barColor:     RGB24(0x00FF00),
		outlineColor: RGB24(0xFFFFFF),
		fillColor:    RGB24(0x444444),
	}
}

// WithRange sets the displayed range. New fails if min >= max.
func WithRange(min, max float64) Option {
	return func(o *options) {
		o.min, o.max = min, max
	}
}

// WithValue sets the initial value. Defaults to the range minimum.
func WithValue(v float64) Option {
	return func(o *options) {
		o.value = &v
	}
}

// WithMode selects strict or clamping assignment.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithDirection sets the fill direction. Vertical directions produce a
// vertical bar.
func WithDirection(d Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithBorderThickness sets the outline thickness in pixels.
func WithBorderThickness(px int) Option {
	return func(o *options) {
		o.border = px
	}
}

// WithMarginSize sets the gap between outline and bar in pixels.
func WithMarginSize(px int) Option {
	return func(o *options) {
		o.margin = px
	}
}

// WithBarColor sets the color of the filled part.
func WithBarColor(c color.Color) Option {
	return func(o *options) {
		o.barColor = c
	}
}

// WithOutlineColor sets the border color.
func WithOutlineColor(c color.Color) Option {
	return func(o *options) {
		o.outlineColor = c
	}
}

// WithFillColor sets the background color inside the border. Nil makes the
// background transparent.
func WithFillColor(c color.Color) Option {
	return func(o *options) {
		o.fillColor = c
	}
}

// WithSurface renders into an externally owned surface instead of a
// freshly allocated one. The surface must be at least as large as the bar;
// the bar writes through it and never copies it. If the surface implements
// surface.Paletted, the bar's colors are written into its palette.
func WithSurface(s surface.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithName labels the bar in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// RGB24 converts a 0xRRGGBB literal into an opaque color.
func RGB24(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}
