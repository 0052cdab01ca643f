package progressbar

import "fmt"

// Direction is the way a bar fills as its value increases.
type Direction uint8

const (
	// LeftToRight fills from the left edge toward the right.
	LeftToRight Direction = iota

	// RightToLeft fills from the right edge toward the left.
	RightToLeft

	// BottomToTop fills from the bottom edge upward.
	BottomToTop

	// TopToBottom fills from the top edge downward.
	TopToBottom
)

// String returns the kebab-case name used in configuration files.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case BottomToTop:
		return "bottom-to-top"
	case TopToBottom:
		return "top-to-bottom"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{LeftToRight, RightToLeft, BottomToTop, TopToBottom} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("progressbar: unknown direction %q", s)
}

// Vertical reports whether the fill axis is y.
func (d Direction) Vertical() bool {
	return d == BottomToTop || d == TopToBottom
}

// Mirrored reports whether increasing value moves the fill boundary toward
// decreasing pixel coordinates. Pixel y grows downward, so BottomToTop is
// mirrored and TopToBottom is not.
func (d Direction) Mirrored() bool {
	return d == RightToLeft || d == BottomToTop
}
