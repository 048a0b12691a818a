package rangetool

import (
	"math"

	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/plot/ranges"
	"github.com/dshills/rangescope/internal/plot/scale"
)

// DefaultTolerance is the edge hit distance in screen units.
const DefaultTolerance = 3.0

// IsNear reports whether the screen position pos is strictly within
// tolerance of value projected through s. A nil value is never near.
func IsNear(pos float64, value *float64, s scale.Scale, tolerance float64) bool {
	if value == nil {
		return false
	}
	svalue := s.Compute(*value)
	return math.Abs(pos-svalue) < tolerance
}

// IsInside reports whether the screen point (sx, sy) falls within the
// overlay. An axis missing either boundary does not constrain the test.
func IsInside(sx, sy float64, xscale, yscale scale.Scale, overlay *annotation.BoxAnnotation) bool {
	result := true

	if overlay.Left != nil && overlay.Right != nil {
		x := xscale.Invert(sx)
		if x < *overlay.Left || x > *overlay.Right {
			result = false
		}
	}

	if overlay.Bottom != nil && overlay.Top != nil {
		y := yscale.Invert(sy)
		if y < *overlay.Bottom || y > *overlay.Top {
			result = false
		}
	}

	return result
}

// ComputeValue shifts value by sdelta screen units. The shifted value is
// returned only if it stays within bounds; otherwise value is returned
// unchanged.
func ComputeValue(value float64, s scale.Scale, sdelta float64, bounds ranges.Interval) float64 {
	svalue := s.Compute(value)
	newValue := s.Invert(svalue + sdelta)
	if newValue >= bounds.Start && newValue <= bounds.End {
		return newValue
	}
	return value
}

// UpdateRange pans r by sdelta screen units. Both endpoints are committed
// together, and only if both stay within bounds. A nil range is ignored.
func UpdateRange(r *ranges.Range1d, s scale.Scale, sdelta float64, bounds ranges.Interval) {
	if r == nil {
		return
	}
	sstart, send := s.RCompute(r.Start(), r.End())
	start, end := s.RInvert(sstart+sdelta, send+sdelta)
	if bounds.Contains(start) && bounds.Contains(end) {
		r.Set(start, end)
	}
}
