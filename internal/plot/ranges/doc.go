// Package ranges provides the data-space intervals that plots display.
//
// Range1d is a mutable [start, end] interval bound to one plot axis. It
// publishes a Change to its observers every time either endpoint moves,
// which lets derived state such as an overlay annotation follow the range
// without holding a copy of its own:
//
//	r := ranges.NewRange1d(0, 10)
//	sub := r.Subscribe(func(c ranges.Change) {
//	    fmt.Println("now", c.Start, c.End)
//	})
//	defer sub.Unsubscribe()
//	r.Set(5, 15)
//
// Interval is the read-only counterpart used for frame bounds.
package ranges
