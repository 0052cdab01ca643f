package config

import (
	"fmt"
	"image/color"

	"github.com/gogpu/progressbar"
)

// Options translates b into constructor options. Fields a legacy bar
// fixes (range, mode, direction, border and margin) are still emitted;
// NewLegacy overrides them.
func (b BarSpec) Options() ([]progressbar.Option, error) {
	dir, err := progressbar.ParseDirection(b.Direction)
	if err != nil {
		return nil, err
	}
	switch b.Kind {
	case KindVertical:
		if !dir.Vertical() {
			return nil, fmt.Errorf("config: bar %q: vertical bar with direction %s", b.Name, dir)
		}
	default:
		if dir.Vertical() {
			return nil, fmt.Errorf("config: bar %q: %s bar with direction %s", b.Name, b.Kind, dir)
		}
	}

	mode := progressbar.Clamp
	if b.Mode == "strict" {
		mode = progressbar.Strict
	}

	opts := []progressbar.Option{
		progressbar.WithName(b.Name),
		progressbar.WithRange(b.Min, b.Max),
		progressbar.WithValue(b.Value),
		progressbar.WithMode(mode),
		progressbar.WithDirection(dir),
	}
	if b.Border != nil {
		opts = append(opts, progressbar.WithBorderThickness(*b.Border))
	}
	if b.Margin != nil {
		opts = append(opts, progressbar.WithMarginSize(*b.Margin))
	}

	colors := []struct {
		value string
		with  func(color.Color) progressbar.Option
	}{
		{b.BarColor, progressbar.WithBarColor},
		{b.OutlineColor, progressbar.WithOutlineColor},
		{b.FillColor, progressbar.WithFillColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value, nil)
		if err != nil {
			return nil, fmt.Errorf("config: bar %q: %w", b.Name, err)
		}
		opts = append(opts, c.with(parsed))
	}
	return opts, nil
}

// Build creates the bar described by b.
func (b BarSpec) Build() (*progressbar.Bar, error) {
	opts, err := b.Options()
	if err != nil {
		return nil, err
	}
	if b.Kind == KindLegacy {
		return progressbar.NewLegacy(b.X, b.Y, b.Width, b.Height, b.Value, opts...)
	}
	return progressbar.New(b.X, b.Y, b.Width, b.Height, opts...)
}

// BuildAll creates every bar of the scenario in declaration order.
func (s *Scenario) BuildAll() ([]*progressbar.Bar, error) {
	bars := make([]*progressbar.Bar, 0, len(s.Bars))
	for _, spec := range s.Bars {
		bar, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("config: bar %q: %w", spec.Name, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
