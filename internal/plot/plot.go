package plot

import (
	"github.com/dshills/rangescope/internal/dataset"
	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/plot/ranges"
	"github.com/dshills/rangescope/internal/plot/scale"
	"github.com/dshills/rangescope/internal/renderer/core"
	"github.com/dshills/rangescope/internal/tool/gesture"
)

// Plot is one plotting surface.
type Plot struct {
	// Title is drawn above the frame.
	Title string

	// XRange and YRange are the visible data window.
	XRange *ranges.Range1d
	YRange *ranges.Range1d

	// XBounds and YBounds are the valid data extent of the frame.
	XBounds ranges.Interval
	YBounds ranges.Interval

	XScaleKind scale.Kind
	YScaleKind scale.Kind

	Series      []*dataset.Series
	Annotations []*annotation.BoxAnnotation

	// rect is the frame's screen rectangle, set by layout.
	rect   core.ScreenRect
	cursor gesture.Cursor
}

// New creates a plot showing series, with both visible ranges and bounds
// set to the padded data extent.
func New(title string, series ...*dataset.Series) *Plot {
	var xb, yb ranges.Interval
	for i, s := range series {
		x, y := s.Extent()
		if i == 0 {
			xb, yb = x, y
			continue
		}
		xb, yb = xb.Union(x), yb.Union(y)
	}
	yb = yb.Pad(0.05)

	return &Plot{
		Title:      title,
		XRange:     ranges.NewRange1d(xb.Start, xb.End),
		YRange:     ranges.NewRange1d(yb.Start, yb.End),
		XBounds:    xb,
		YBounds:    yb,
		XScaleKind: scale.KindLinear,
		YScaleKind: scale.KindLinear,
		Series:     series,
		cursor:     gesture.CursorDefault,
	}
}

// SetRect sets the frame's screen rectangle.
func (p *Plot) SetRect(r core.ScreenRect) {
	p.rect = r
}

// Rect returns the frame's screen rectangle.
func (p *Plot) Rect() core.ScreenRect {
	return p.rect
}

// AddAnnotation adds a box drawn over the plot.
func (p *Plot) AddAnnotation(b *annotation.BoxAnnotation) {
	p.Annotations = append(p.Annotations, b)
}

// SetCursor records the cursor requested by a tool.
func (p *Plot) SetCursor(c gesture.Cursor) {
	p.cursor = c
}

// Cursor returns the last requested cursor.
func (p *Plot) Cursor() gesture.Cursor {
	return p.cursor
}

// Frame returns the plot's frame.
func (p *Plot) Frame() *Frame {
	return &Frame{plot: p}
}

// Frame maps between the plot's data space and its screen rectangle.
type Frame struct {
	plot *Plot
}

// XScale maps visible x data onto frame columns.
func (f *Frame) XScale() scale.Scale {
	p := f.plot
	iv := p.XRange.Interval()
	return scale.New(p.XScaleKind,
		scale.Interval{Min: iv.Start, Max: iv.End},
		scale.Interval{Min: float64(p.rect.Left), Max: float64(p.rect.Right - 1)})
}

// YScale maps visible y data onto frame rows. Rows grow downward, so the
// range start maps to the bottom row.
func (f *Frame) YScale() scale.Scale {
	p := f.plot
	iv := p.YRange.Interval()
	return scale.New(p.YScaleKind,
		scale.Interval{Min: iv.Start, Max: iv.End},
		scale.Interval{Min: float64(p.rect.Bottom - 1), Max: float64(p.rect.Top)})
}

// XRange returns the bounding x extent.
func (f *Frame) XRange() ranges.Interval {
	return f.plot.XBounds
}

// YRange returns the bounding y extent.
func (f *Frame) YRange() ranges.Interval {
	return f.plot.YBounds
}

// Rect returns the frame's screen rectangle.
func (f *Frame) Rect() core.ScreenRect {
	return f.plot.rect
}
