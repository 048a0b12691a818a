package dataset

import (
	"math"
	"sort"

	"github.com/dshills/rangescope/internal/plot/ranges"
)

// Series is a named sequence of (x, y) samples sorted by x.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.X)
}

// Append adds a sample. Non-finite samples are dropped.
func (s *Series) Append(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Sort orders the samples by x.
func (s *Series) Sort() {
	sort.Sort(byX{s})
}

// Extent returns the x and y extents of the series.
func (s *Series) Extent() (x, y ranges.Interval) {
	if s.Len() == 0 {
		return ranges.Interval{}, ranges.Interval{}
	}
	x = ranges.Interval{Start: math.Inf(1), End: math.Inf(-1)}
	y = x
	for i := range s.X {
		x.Start = math.Min(x.Start, s.X[i])
		x.End = math.Max(x.End, s.X[i])
		y.Start = math.Min(y.Start, s.Y[i])
		y.End = math.Max(y.End, s.Y[i])
	}
	return x, y
}

// Window returns the index range [lo, hi) of samples with x in iv.
// The series must be sorted.
func (s *Series) Window(iv ranges.Interval) (lo, hi int) {
	lo = sort.SearchFloat64s(s.X, iv.Start)
	hi = sort.Search(len(s.X), func(i int) bool { return s.X[i] > iv.End })
	return lo, hi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type byX struct{ s *Series }

func (b byX) Len() int           { return len(b.s.X) }
func (b byX) Less(i, j int) bool { return b.s.X[i] < b.s.X[j] }
func (b byX) Swap(i, j int) {
	b.s.X[i], b.s.X[j] = b.s.X[j], b.s.X[i]
	b.s.Y[i], b.s.Y[j] = b.s.Y[j], b.s.Y[i]
}
