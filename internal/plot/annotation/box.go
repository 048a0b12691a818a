// Package annotation provides plot overlays drawn on top of data.
package annotation

import (
	"fmt"

	"github.com/google/uuid"
)

// Level is the render pass an annotation is drawn in.
type Level string

const (
	// LevelAnnotation draws with ordinary annotations, under the overlay pass.
	LevelAnnotation Level = "annotation"
	// LevelOverlay draws last, above everything else.
	LevelOverlay Level = "overlay"
)

// RenderMode selects how the box is realized by the renderer.
type RenderMode string

const (
	// RenderCanvas rasterizes the box with the plot content.
	RenderCanvas RenderMode = "canvas"
	// RenderCSS draws the box as a separate layer over the plot.
	RenderCSS RenderMode = "css"
)

// Style is the visual configuration of a box annotation.
// Colors are hex strings ("#rrggbb").
type Style struct {
	FillColor string
	FillAlpha float64
	LineColor string
	LineAlpha float64
	LineWidth float64
	LineDash  []int
}

// BoxAnnotation is a rectangle in data space.
//
// Each boundary is independently optional; a nil boundary means the box
// extends across the whole frame along that side.
type BoxAnnotation struct {
	id string

	Left   *float64
	Right  *float64
	Bottom *float64
	Top    *float64

	Level      Level
	RenderMode RenderMode
	Style      Style
}

// NewBoxAnnotation creates an unbounded box with the given style.
func NewBoxAnnotation(style Style) *BoxAnnotation {
	return &BoxAnnotation{
		id:         uuid.NewString(),
		Level:      LevelAnnotation,
		RenderMode: RenderCanvas,
		Style:      style,
	}
}

// DefaultRangeOverlayStyle returns the translucent dashed style used by
// range selection overlays.
func DefaultRangeOverlayStyle() Style {
	return Style{
		FillColor: "#fff9ba",
		FillAlpha: 0.5,
		LineColor: "#000000",
		LineAlpha: 0,
		LineWidth: 2,
		LineDash:  []int{4, 4},
	}
}

// DefaultRangeOverlay returns a fresh overlay box for a range tool.
func DefaultRangeOverlay() *BoxAnnotation {
	b := NewBoxAnnotation(DefaultRangeOverlayStyle())
	b.Level = LevelOverlay
	b.RenderMode = RenderCSS
	return b
}

// ID returns the annotation's model identifier.
func (b *BoxAnnotation) ID() string {
	if b.id == "" {
		b.id = uuid.NewString()
	}
	return b.id
}

// SetHorizontal sets the left and right boundaries.
func (b *BoxAnnotation) SetHorizontal(left, right *float64) {
	b.Left = left
	b.Right = right
}

// SetVertical sets the bottom and top boundaries.
func (b *BoxAnnotation) SetVertical(bottom, top *float64) {
	b.Bottom = bottom
	b.Top = top
}

// Clear removes all four boundaries.
func (b *BoxAnnotation) Clear() {
	b.SetHorizontal(nil, nil)
	b.SetVertical(nil, nil)
}

// IsEmpty reports whether no boundary is set.
func (b *BoxAnnotation) IsEmpty() bool {
	return b.Left == nil && b.Right == nil && b.Bottom == nil && b.Top == nil
}

// String returns a compact description of the bounds.
func (b *BoxAnnotation) String() string {
	return fmt.Sprintf("box[l=%s r=%s b=%s t=%s]",
		fmtBound(b.Left), fmtBound(b.Right), fmtBound(b.Bottom), fmtBound(b.Top))
}

func fmtBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

// Float returns a pointer to a copy of v.
func Float(v float64) *float64 {
	return &v
}
