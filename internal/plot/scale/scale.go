// Package scale maps data-space values to screen-space positions.
//
// A Scale is derived per axis from the plot's visible range (the source
// interval) and the frame's pixel extent (the target interval). Scales are
// cheap values; callers rebuild them whenever the source range or the
// screen geometry changes instead of holding on to one.
package scale

import (
	"math"

	"github.com/pkg/errors"
)

// Interval is a closed numeric interval used as a scale's source or target.
type Interval struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Scale converts between data values and screen positions for one axis.
type Scale interface {
	// Compute maps a data value to a screen position.
	Compute(v float64) float64

	// Invert maps a screen position back to a data value.
	Invert(sv float64) float64

	// RCompute maps a data interval to screen positions.
	RCompute(start, end float64) (float64, float64)

	// RInvert maps a pair of screen positions back to data values.
	RInvert(sstart, send float64) (float64, float64)
}

// Kind selects a scale implementation.
type Kind string

const (
	// KindLinear is an affine mapping.
	KindLinear Kind = "linear"
	// KindLog maps values proportionally to their base-10 logarithm.
	KindLog Kind = "log"
)

// ParseKind parses a scale kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLinear, "":
		return KindLinear, nil
	case KindLog:
		return KindLog, nil
	default:
		return "", errors.Errorf("unknown scale kind %q", s)
	}
}

// New builds a scale of the given kind mapping source onto target.
func New(kind Kind, source, target Interval) Scale {
	if kind == KindLog {
		return Log{Source: source, Target: target}
	}
	return Linear{Source: source, Target: target}
}

// Linear implements an affine mapping of Source onto Target.
//
// A zero-width source yields non-finite results.
type Linear struct {
	Source Interval
	Target Interval
}

func (s Linear) coefficients() (factor, offset float64) {
	factor = s.Target.Span() / s.Source.Span()
	offset = s.Target.Min - factor*s.Source.Min
	return factor, offset
}

// Compute maps a data value to a screen position.
func (s Linear) Compute(v float64) float64 {
	factor, offset := s.coefficients()
	return factor*v + offset
}

// Invert maps a screen position back to a data value.
func (s Linear) Invert(sv float64) float64 {
	factor, offset := s.coefficients()
	return (sv - offset) / factor
}

// RCompute maps a data interval to screen positions.
func (s Linear) RCompute(start, end float64) (float64, float64) {
	factor, offset := s.coefficients()
	return factor*start + offset, factor*end + offset
}

// RInvert maps a pair of screen positions back to data values.
func (s Linear) RInvert(sstart, send float64) (float64, float64) {
	factor, offset := s.coefficients()
	return (sstart - offset) / factor, (send - offset) / factor
}

// Log maps values by their base-10 logarithm.
//
// Non-positive values produce NaN or -Inf.
type Log struct {
	Source Interval
	Target Interval
}

func (s Log) coefficients() (factor, offset float64) {
	lo, hi := math.Log10(s.Source.Min), math.Log10(s.Source.Max)
	factor = s.Target.Span() / (hi - lo)
	offset = s.Target.Min - factor*lo
	return factor, offset
}

// Compute maps a data value to a screen position.
func (s Log) Compute(v float64) float64 {
	factor, offset := s.coefficients()
	return factor*math.Log10(v) + offset
}

// Invert maps a screen position back to a data value.
func (s Log) Invert(sv float64) float64 {
	factor, offset := s.coefficients()
	return math.Pow(10, (sv-offset)/factor)
}

// RCompute maps a data interval to screen positions.
func (s Log) RCompute(start, end float64) (float64, float64) {
	return s.Compute(start), s.Compute(end)
}

// RInvert maps a pair of screen positions back to data values.
func (s Log) RInvert(sstart, send float64) (float64, float64) {
	return s.Invert(sstart), s.Invert(send)
}
