package rangetool

import "strings"

// Side is a set of overlay edges.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight
	SideBottom
	SideTop

	SideNone Side = 0
)

// Has reports whether every edge in other is in s.
func (s Side) Has(other Side) bool {
	return other != 0 && s&other == other
}

// With returns s with other added.
func (s Side) With(other Side) Side {
	return s | other
}

// String returns the edge names joined by "|".
func (s Side) String() string {
	if s == SideNone {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		side Side
		name string
	}{
		{SideLeft, "left"},
		{SideRight, "right"},
		{SideBottom, "bottom"},
		{SideTop, "top"},
	} {
		if s&e.side != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
