package progressbar

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below unwrap to these, so callers can
// match either with errors.Is or errors.As.
var (
	// ErrInvalidRange is returned when the minimum is not below the maximum.
	ErrInvalidRange = errors.New("progressbar: invalid range")

	// ErrOutOfRange is returned by strict-mode assignments outside the range.
	ErrOutOfRange = errors.New("progressbar: value out of range")

	// ErrInvalidGeometry is returned when border and margin leave no
	// fillable interior.
	ErrInvalidGeometry = errors.New("progressbar: invalid geometry")
)

// InvalidRangeError reports a range whose minimum is not below its maximum.
// It is fatal at construction time.
type InvalidRangeError struct {
	Min float64
	Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("progressbar: invalid range [%g, %g]: minimum must be less than maximum", e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// OutOfRangeError reports a strict-mode value outside [Min, Max]. The stored
// value is left unchanged; callers typically ignore it or clamp and retry.
type OutOfRangeError struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("progressbar: value %g outside [%g, %g]", e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
