package rangetool

import (
	"github.com/dshills/rangescope/internal/plot/ranges"
	"github.com/dshills/rangescope/internal/plot/scale"
	"github.com/dshills/rangescope/internal/tool/gesture"
)

// Frame exposes the plot frame's current scales and bounding ranges.
// Implementations derive scales from live plot state on every call.
type Frame interface {
	XScale() scale.Scale
	YScale() scale.Scale
	XRange() ranges.Interval
	YRange() ranges.Interval
}

// Host is the plot a View is attached to.
type Host interface {
	gesture.CursorSetter

	// Frame returns the plot's current frame.
	Frame() Frame
}

// View runs the range tool's gesture state machine.
type View struct {
	model *Tool
	host  Host

	sides  Side
	lastDX float64
	lastDY float64

	subs []*ranges.Subscription
}

var _ gesture.Tool = (*View)(nil)

// NewView creates a view for model attached to host.
// Call Initialize and ConnectSignals before dispatching gestures.
func NewView(model *Tool, host Host) *View {
	return &View{model: model, host: host}
}

// Model returns the tool model.
func (v *View) Model() *Tool {
	return v.model
}

// Sides returns the overlay edges grabbed by the current pan.
func (v *View) Sides() Side {
	return v.sides
}

// Initialize resets gesture state and syncs the overlay with the ranges.
func (v *View) Initialize() {
	v.sides = SideNone
	v.model.UpdateOverlayFromRanges()
}

// ConnectSignals resyncs the overlay whenever a bound range changes.
// It does nothing while the view is already connected.
func (v *View) ConnectSignals() {
	if len(v.subs) > 0 {
		return
	}
	resync := func(ranges.Change) { v.model.UpdateOverlayFromRanges() }
	if v.model.XRange != nil {
		v.subs = append(v.subs, v.model.XRange.Subscribe(resync))
	}
	if v.model.YRange != nil {
		v.subs = append(v.subs, v.model.YRange.Subscribe(resync))
	}
}

// Disconnect removes the subscriptions made by ConnectSignals.
func (v *View) Disconnect() {
	for _, s := range v.subs {
		s.Unsubscribe()
	}
	v.subs = nil
}

// Move updates the cursor for a hover position.
func (v *View) Move(ev gesture.MoveEvent) {
	frame := v.host.Frame()
	xscale := frame.XScale()
	yscale := frame.YScale()
	overlay := v.model.Overlay

	switch {
	case IsNear(ev.SX, overlay.Left, xscale, DefaultTolerance) ||
		IsNear(ev.SX, overlay.Right, xscale, DefaultTolerance):
		v.host.SetCursor(gesture.CursorEWResize)
	case IsNear(ev.SY, overlay.Bottom, yscale, DefaultTolerance) ||
		IsNear(ev.SY, overlay.Top, yscale, DefaultTolerance):
		v.host.SetCursor(gesture.CursorNSResize)
	case IsInside(ev.SX, ev.SY, xscale, yscale, overlay):
		v.host.SetCursor(gesture.CursorGrab)
	default:
		v.host.SetCursor(gesture.CursorDefault)
	}
}

// PanStart records which overlay edges the pan grabbed.
func (v *View) PanStart(ev gesture.GestureEvent) {
	v.lastDX = 0
	v.lastDY = 0
	v.sides = SideNone

	frame := v.host.Frame()
	xscale := frame.XScale()
	yscale := frame.YScale()
	overlay := v.model.Overlay

	if v.model.XRange != nil {
		switch {
		case IsNear(ev.SX, overlay.Left, xscale, DefaultTolerance):
			v.sides = v.sides.With(SideLeft)
		case IsNear(ev.SX, overlay.Right, xscale, DefaultTolerance):
			v.sides = v.sides.With(SideRight)
		case IsInside(ev.SX, ev.SY, xscale, yscale, overlay):
			v.sides = v.sides.With(SideLeft | SideRight)
		}
	}

	// Unlike the horizontal edges, bottom and top are tested
	// independently, so a pan near both grabs both.
	if v.model.YRange != nil {
		if IsNear(ev.SY, overlay.Bottom, yscale, DefaultTolerance) {
			v.sides = v.sides.With(SideBottom)
		}
		if IsNear(ev.SY, overlay.Top, yscale, DefaultTolerance) {
			v.sides = v.sides.With(SideTop)
		} else if IsInside(ev.SX, ev.SY, xscale, yscale, overlay) {
			v.sides = v.sides.With(SideBottom | SideTop)
		}
	}
}

// Pan applies the movement since the previous step to the grabbed edges.
func (v *View) Pan(ev gesture.GestureEvent) {
	frame := v.host.Frame()

	newDX := ev.DeltaX - v.lastDX
	newDY := ev.DeltaY - v.lastDY

	if xr := v.model.XRange; xr != nil {
		xscale := frame.XScale()
		bounds := frame.XRange()
		switch {
		case v.sides.Has(SideLeft | SideRight):
			UpdateRange(xr, xscale, newDX, bounds)
		case v.sides.Has(SideLeft):
			xr.SetStart(ComputeValue(xr.Start(), xscale, newDX, bounds))
		case v.sides.Has(SideRight):
			xr.SetEnd(ComputeValue(xr.End(), xscale, newDX, bounds))
		}
	}

	if yr := v.model.YRange; yr != nil {
		yscale := frame.YScale()
		bounds := frame.YRange()
		switch {
		case v.sides.Has(SideBottom | SideTop):
			UpdateRange(yr, yscale, newDY, bounds)
		case v.sides.Has(SideBottom):
			yr.SetStart(ComputeValue(yr.Start(), yscale, newDY, bounds))
		case v.sides.Has(SideTop):
			yr.SetEnd(ComputeValue(yr.End(), yscale, newDY, bounds))
		}
	}

	v.lastDX = ev.DeltaX
	v.lastDY = ev.DeltaY
}

// PanEnd releases the grabbed edges.
func (v *View) PanEnd(gesture.GestureEvent) {
	v.sides = SideNone
}
