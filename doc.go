// Package progressbar renders progress bars into indexed framebuffers.
//
// # Overview
//
// A Bar owns a value, a range and a fill strategy, and writes palette indices
// into a surface.Surface. On every value change it repaints only the pixel
// columns (or rows) between the old and the new fill boundary, so the cost of
// an update follows the size of the change, not the size of the bar. This
// suits small embedded displays driven over slow buses.
//
// # Quick Start
//
//	import "github.com/gogpu/progressbar"
//
//	bar, err := progressbar.New(10, 80, 180, 40)
//	if err != nil {
//	    return err
//	}
//	_ = bar.SetValue(42)
//
//	// Push the bar's pixels to a display.
//	bar.Surface().(*surface.Indexed).Draw(frame, bar.Position())
//
// # Directions
//
// Horizontal bars fill LeftToRight or RightToLeft, vertical bars BottomToTop
// or TopToBottom. The reversed directions reflect the fill about the middle
// of the bar, so a value sequence on a reversed bar paints the mirror image
// of the same sequence on the forward bar.
//
// # Boundary Visibility
//
// A value above the minimum always shows at least one filled pixel, and a
// value below the maximum always leaves at least one pixel empty. Only the
// exact minimum renders an empty bar and only the exact maximum a full one.
//
// # Range Modes
//
// In Clamp mode (the default) out-of-range values are limited to the range.
// In Strict mode they are rejected with *OutOfRangeError and nothing is
// repainted. NewLegacy creates the first-generation [0, 1] strict bar.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger to
// receive render and rejection records.
package progressbar

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
