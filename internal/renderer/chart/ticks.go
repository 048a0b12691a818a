package chart

import "math"

// Ticks returns about n evenly spaced "nice" values covering [lo, hi]
// and the number of fraction digits needed to print them.
func Ticks(lo, hi float64, n int) (ticks []float64, prec int) {
	if n < 2 || !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil, 0
	}
	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(n-1), true)
	first := math.Ceil(lo/step) * step
	for v := first; v <= hi+step*1e-9; v += step {
		// Snap accumulated error and negative zero.
		t := math.Round(v/step) * step
		if t == 0 {
			t = 0
		}
		ticks = append(ticks, t)
	}
	prec = int(math.Max(-math.Floor(math.Log10(step)), 0))
	return ticks, prec
}

// niceNum finds a 1, 2, 5 multiple of a power of ten near x.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	switch {
	case round && f < 1.5:
		nf = 1
	case round && f < 3:
		nf = 2
	case round && f < 7:
		nf = 5
	case round:
		nf = 10
	case f <= 1:
		nf = 1
	case f <= 2:
		nf = 2
	case f <= 5:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}
