package gesture

// dragTracker tracks the active pan gesture.
type dragTracker struct {
	active bool

	// startX/startY is where the pan started.
	startX, startY float64

	// currentX/currentY is the latest pointer position.
	currentX, currentY float64

	// sentX/sentY is the cumulative delta of the last event delivered to
	// the tool.
	sentX, sentY float64
}

func (t *dragTracker) start(x, y float64) {
	t.active = true
	t.startX, t.startY = x, y
	t.currentX, t.currentY = x, y
}

func (t *dragTracker) update(x, y float64) {
	if t.active {
		t.currentX, t.currentY = x, y
	}
}

// sent records ev as delivered and returns it.
func (t *dragTracker) sent(ev GestureEvent) GestureEvent {
	t.sentX, t.sentY = ev.DeltaX, ev.DeltaY
	return ev
}

// pending reports whether ev moves the pointer away from the last
// delivered position.
func (t *dragTracker) pending(ev GestureEvent) bool {
	return ev.DeltaX != t.sentX || ev.DeltaY != t.sentY
}

func (t *dragTracker) end() {
	*t = dragTracker{}
}

func (t *dragTracker) event() GestureEvent {
	return GestureEvent{
		SX:     t.currentX,
		SY:     t.currentY,
		DeltaX: t.currentX - t.startX,
		DeltaY: t.currentY - t.startY,
	}
}

// Acceptor decides whether a press at a screen position may start a pan.
type Acceptor func(x, y float64) bool

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAcceptor limits pan starts to positions accepted by fn.
func WithAcceptor(fn Acceptor) Option {
	return func(d *Dispatcher) {
		d.accept = fn
	}
}

// Dispatcher routes pointer input for a single tool.
type Dispatcher struct {
	tool   Tool
	accept Acceptor
	drag   dragTracker

	// ignoring is set while a press that was rejected by the acceptor is
	// held, so its drag and release are swallowed.
	ignoring bool
}

// NewDispatcher creates a dispatcher delivering to tool.
func NewDispatcher(tool Tool, opts ...Option) *Dispatcher {
	d := &Dispatcher{tool: tool}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Panning reports whether a pan gesture is in progress.
func (d *Dispatcher) Panning() bool {
	return d.drag.active
}

// HandlePointer processes a pointer sample. pressed is the primary button
// state at the time of the sample.
func (d *Dispatcher) HandlePointer(x, y float64, pressed bool) {
	switch {
	case pressed && d.drag.active:
		d.drag.update(x, y)
		d.tool.Pan(d.drag.sent(d.drag.event()))

	case pressed && d.ignoring:
		// Held press that started outside the accepted area.

	case pressed:
		if d.accept != nil && !d.accept(x, y) {
			d.ignoring = true
			return
		}
		d.drag.start(x, y)
		d.tool.PanStart(d.drag.sent(d.drag.event()))

	case d.drag.active:
		d.drag.update(x, y)
		// The release may land somewhere no motion sample reported,
		// including back at the press position.
		ev := d.drag.event()
		if d.drag.pending(ev) {
			d.tool.Pan(d.drag.sent(ev))
		}
		d.drag.end()
		d.tool.PanEnd(ev)

	case d.ignoring:
		d.ignoring = false

	default:
		d.tool.Move(MoveEvent{SX: x, SY: y})
	}
}

// Cancel ends an in-progress pan without a final step.
func (d *Dispatcher) Cancel() {
	d.ignoring = false
	if !d.drag.active {
		return
	}
	ev := d.drag.event()
	d.drag.end()
	d.tool.PanEnd(ev)
}
