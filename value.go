package progressbar

import "math"

// Range is the closed interval [Min, Max] a bar can display.
// The zero Range is invalid; build one with NewRange.
type Range struct {
	Min float64
	Max float64
}

// NewRange validates and returns [min, max].
// It fails with *InvalidRangeError if min >= max or either bound is NaN.
func NewRange(min, max float64) (Range, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min >= max {
		return Range{}, &InvalidRangeError{Min: min, Max: max}
	}
	return Range{Min: min, Max: max}, nil
}

// RatioOf returns (v - Min) / (Max - Min). It is pure; values outside the
// range produce ratios outside [0, 1].
func (r Range) RatioOf(v float64) float64 {
	return (v - r.Min) / (r.Max - r.Min)
}

// Sample returns the fill sample for v. The bound flags compare v itself,
// so a value next to a bound keeps its flag when the ratio rounds onto it.
func (r Range) Sample(v float64) Sample {
	return Sample{Ratio: r.RatioOf(v), AboveMin: v > r.Min, BelowMax: v < r.Max}
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// Mode selects how out-of-range assignments are handled.
type Mode uint8

const (
	// Clamp silently limits values to the range. Callers observe the
	// adjusted value through the getter.
	Clamp Mode = iota

	// Strict rejects values outside the range with *OutOfRangeError.
	Strict
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Clamp:
		return "clamp"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// Model holds the current value of a bar and enforces its range.
type Model struct {
	rng   Range
	mode  Mode
	value float64
}

// NewModel creates a model starting at initial, which is validated with the
// same policy SetValue uses.
func NewModel(r Range, mode Mode, initial float64) (*Model, error) {
	if _, err := NewRange(r.Min, r.Max); err != nil {
		return nil, err
	}
	m := &Model{rng: r, mode: mode, value: r.Min}
	v, err := m.admit(initial)
	if err != nil {
		return nil, err
	}
	m.value = v
	return m, nil
}

// SetValue stores v and returns the previous and the stored value. In clamp
// mode the stored value may differ from v. On error nothing changes.
func (m *Model) SetValue(v float64) (old, applied float64, err error) {
	applied, err = m.admit(v)
	if err != nil {
		return m.value, m.value, err
	}
	old = m.value
	m.value = applied
	return old, applied, nil
}

// admit applies the mode to v. NaN is rejected in both modes.
func (m *Model) admit(v float64) (float64, error) {
	if math.IsNaN(v) || (m.mode == Strict && !m.rng.Contains(v)) {
		return 0, &OutOfRangeError{Value: v, Min: m.rng.Min, Max: m.rng.Max}
	}
	return m.rng.Clamp(v), nil
}

// Value returns the stored value.
func (m *Model) Value() float64 { return m.value }

// Ratio returns the stored value normalized to [0, 1].
func (m *Model) Ratio() float64 { return m.rng.RatioOf(m.value) }

// Range returns the model's range.
func (m *Model) Range() Range { return m.rng }

// Mode returns the assignment policy.
func (m *Model) Mode() Mode { return m.mode }
