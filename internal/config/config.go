// Package config loads demo scenarios: a display, the bars placed on it and
// the value updates to replay.
package config

// Bar kinds.
const (
	KindHorizontal = "horizontal"
	KindVertical   = "vertical"
	KindLegacy     = "legacy"
)

// Scenario is the root of a scenario file.
type Scenario struct {
	Display Display   `yaml:"display" validate:"required"`
	Bars    []BarSpec `yaml:"bars" validate:"required,min=1,unique=Name,dive"`
	Steps   []Step    `yaml:"steps" validate:"dive"`
}

// Display describes the target panel.
type Display struct {
	Width      int    `yaml:"width" validate:"gt=0"`
	Height     int    `yaml:"height" validate:"gt=0"`
	Background string `yaml:"background" validate:"omitempty,rgbhex"`
	// Scale is the integer upscaling applied to written frames.
	Scale int `yaml:"scale" validate:"gte=0,lte=16"`
}

// BarSpec describes one bar. Zero Min and Max select 0..100 (0..1 for
// legacy bars); Border and Margin default to 1.
type BarSpec struct {
	Name         string  `yaml:"name" validate:"required"`
	Kind         string  `yaml:"kind" validate:"required,oneof=horizontal vertical legacy"`
	X            int     `yaml:"x" validate:"gte=0"`
	Y            int     `yaml:"y" validate:"gte=0"`
	Width        int     `yaml:"width" validate:"gt=0"`
	Height       int     `yaml:"height" validate:"gt=0"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max" validate:"gtfield=Min"`
	Value        float64 `yaml:"value"`
	Direction    string  `yaml:"direction" validate:"omitempty,oneof=left-to-right right-to-left bottom-to-top top-to-bottom"`
	Mode         string  `yaml:"mode" validate:"omitempty,oneof=strict clamp"`
	BarColor     string  `yaml:"bar_color" validate:"omitempty,rgbhex"`
	OutlineColor string  `yaml:"outline_color" validate:"omitempty,rgbhex"`
	FillColor    string  `yaml:"fill_color" validate:"omitempty,rgbhex|eq=none"`
	Border       *int    `yaml:"border" validate:"omitempty,gte=0"`
	Margin       *int    `yaml:"margin" validate:"omitempty,gte=0"`
}

// Step is one display refresh: every assignment is applied, then the frame
// is written once.
type Step struct {
	Set []Assignment `yaml:"set" validate:"required,min=1,dive"`
}

// Assignment sets one bar's value.
type Assignment struct {
	Bar   string  `yaml:"bar" validate:"required"`
	Value float64 `yaml:"value"`
}

// applyDefaults fills the zero-value fields described on BarSpec.
func (s *Scenario) applyDefaults() {
	if s.Display.Scale == 0 {
		s.Display.Scale = 1
	}
	for i := range s.Bars {
		b := &s.Bars[i]
		if b.Min == 0 && b.Max == 0 {
			b.Max = 100
			if b.Kind == KindLegacy {
				b.Max = 1
			}
		}
		if b.Direction == "" {
			b.Direction = "left-to-right"
			if b.Kind == KindVertical {
				b.Direction = "bottom-to-top"
			}
		}
		if b.Border == nil {
			b.Border = intPtr(1)
		}
		if b.Margin == nil {
			b.Margin = intPtr(1)
		}
	}
}

// Bar returns the bar spec with the given name.
func (s *Scenario) Bar(name string) (BarSpec, bool) {
	for _, b := range s.Bars {
		if b.Name == name {
			return b, true
		}
	}
	return BarSpec{}, false
}

func intPtr(v int) *int { return &v }
