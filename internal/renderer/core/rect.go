package core

// ScreenRect is a half-open block of cells: rows [Top, Bottom) and columns
// [Left, Right).
type ScreenRect struct {
	Top, Left     int
	Bottom, Right int
}

// RectFromSize returns the height by width rect whose top-left cell is
// (left, top).
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

func (r ScreenRect) Width() int  { return max(r.Right-r.Left, 0) }
func (r ScreenRect) Height() int { return max(r.Bottom-r.Top, 0) }

// IsEmpty reports whether r covers no cells.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether cell (x, y) is in r.
func (r ScreenRect) Contains(x, y int) bool {
	return r.ContainsPoint(float64(x), float64(y))
}

// ContainsPoint reports whether the pointer position (x, y) is in r.
func (r ScreenRect) ContainsPoint(x, y float64) bool {
	return x >= float64(r.Left) && x < float64(r.Right) &&
		y >= float64(r.Top) && y < float64(r.Bottom)
}

// Intersection returns the cells in both r and other, or the zero rect.
func (r ScreenRect) Intersection(other ScreenRect) ScreenRect {
	out := ScreenRect{
		Top:    max(r.Top, other.Top),
		Left:   max(r.Left, other.Left),
		Bottom: min(r.Bottom, other.Bottom),
		Right:  min(r.Right, other.Right),
	}
	if out.IsEmpty() {
		return ScreenRect{}
	}
	return out
}

// Inset shrinks r by the given margins.
func (r ScreenRect) Inset(top, right, bottom, left int) ScreenRect {
	return ScreenRect{
		Top:    r.Top + top,
		Left:   r.Left + left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right - right,
	}
}
