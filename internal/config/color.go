package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorNone disables a fill color so the underlying display shows through.
const ColorNone = "none"

// ParseColor parses a #rrggbb color. The empty string yields def and
// "none" yields nil.
func ParseColor(s string, def color.Color) (color.Color, error) {
	switch s {
	case "":
		return def, nil
	case ColorNone:
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("config: color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
