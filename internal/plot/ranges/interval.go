package ranges

// Interval is an immutable [Start, End] extent in data space.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether v lies in [Start, End].
// NaN is never contained.
func (i Interval) Contains(v float64) bool {
	return v >= i.Start && v <= i.End
}

// Width returns End - Start.
func (i Interval) Width() float64 {
	return i.End - i.Start
}

// Pad returns the interval widened by frac of its width on both sides.
// A zero-width interval is widened by frac in absolute terms.
func (i Interval) Pad(frac float64) Interval {
	w := i.Width()
	if w == 0 {
		w = 1
	}
	return Interval{Start: i.Start - w*frac, End: i.End + w*frac}
}

// Union returns the smallest interval containing both i and other.
func (i Interval) Union(other Interval) Interval {
	out := i
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}
