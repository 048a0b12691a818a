package app

import (
	"github.com/dshills/rangescope/internal/plot"
	"github.com/dshills/rangescope/internal/tool/gesture"
	"github.com/dshills/rangescope/internal/tool/rangetool"
)

// Compile-time interface checks.
var (
	_ rangetool.Host  = (*PlotHost)(nil)
	_ rangetool.Frame = (*plot.Frame)(nil)
	_ gesture.Tool    = (*OverviewTool)(nil)
)

// PlotHost adapts a plot.Plot to rangetool.Host.
type PlotHost struct {
	plot *plot.Plot
}

// NewPlotHost creates a host for p.
func NewPlotHost(p *plot.Plot) *PlotHost {
	return &PlotHost{plot: p}
}

// Frame returns the plot's live frame.
func (h *PlotHost) Frame() rangetool.Frame {
	return h.plot.Frame()
}

// SetCursor records the cursor on the plot.
func (h *PlotHost) SetCursor(c gesture.Cursor) {
	h.plot.SetCursor(c)
}

// OverviewTool routes gestures to a range tool view, dropping hover moves
// that fall outside the overview frame.
type OverviewTool struct {
	view *rangetool.View
	plot *plot.Plot
}

// NewOverviewTool wraps view, which must be hosted by p.
func NewOverviewTool(view *rangetool.View, p *plot.Plot) *OverviewTool {
	return &OverviewTool{view: view, plot: p}
}

// Move forwards hovers inside the frame and resets the cursor otherwise.
func (t *OverviewTool) Move(ev gesture.MoveEvent) {
	if !t.plot.Rect().ContainsPoint(ev.SX, ev.SY) {
		t.plot.SetCursor(gesture.CursorDefault)
		return
	}
	t.view.Move(ev)
}

func (t *OverviewTool) PanStart(ev gesture.GestureEvent) { t.view.PanStart(ev) }
func (t *OverviewTool) Pan(ev gesture.GestureEvent)      { t.view.Pan(ev) }
func (t *OverviewTool) PanEnd(ev gesture.GestureEvent)   { t.view.PanEnd(ev) }
