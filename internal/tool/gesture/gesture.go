package gesture

// EventType identifies the kinds of events a tool consumes.
type EventType string

const (
	// EventMove is pointer movement with no button held.
	EventMove EventType = "move"
	// EventPan is a press-drag-release gesture.
	EventPan EventType = "pan"
)

// MoveEvent reports a hover position in screen space.
type MoveEvent struct {
	SX float64
	SY float64
}

// GestureEvent reports a pan gesture position in screen space.
type GestureEvent struct {
	// SX and SY are the current pointer position.
	SX float64
	SY float64

	// DeltaX and DeltaY are the total displacement since the pan started.
	DeltaX float64
	DeltaY float64
}

// Tool handles gestures for one plot.
type Tool interface {
	Move(ev MoveEvent)
	PanStart(ev GestureEvent)
	Pan(ev GestureEvent)
	PanEnd(ev GestureEvent)
}

// Cursor is a pointer shape a tool can request for feedback.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorGrab     Cursor = "grab"
	CursorEWResize Cursor = "ew-resize"
	CursorNSResize Cursor = "ns-resize"
)

// Symbol returns a single-rune representation for text surfaces.
func (c Cursor) Symbol() rune {
	switch c {
	case CursorGrab:
		return '✥'
	case CursorEWResize:
		return '↔'
	case CursorNSResize:
		return '↕'
	default:
		return '·'
	}
}

// CursorSetter receives cursor requests from tools.
type CursorSetter interface {
	SetCursor(c Cursor)
}

// CursorFunc adapts a function to CursorSetter.
type CursorFunc func(c Cursor)

// SetCursor calls f(c).
func (f CursorFunc) SetCursor(c Cursor) {
	f(c)
}
