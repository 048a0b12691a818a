// Package backend abstracts the display the viewer draws on: a tcell
// terminal in production and an in-memory grid in tests.
package backend

import (
	"github.com/dshills/rangescope/internal/renderer/core"
)

// EventType identifies the kind of input event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt carries a value posted from another goroutine.
	EventInterrupt
)

// Event is an input event. Only the fields for its Type are set.
type Event struct {
	Type EventType

	Key  Key
	Rune rune

	// MouseX and MouseY are the pointer cell. MouseButton is the button
	// held at the time of the event, so a motion event with MouseLeft set
	// is a drag.
	MouseX, MouseY int
	MouseButton    MouseButton

	Width, Height int

	Payload any
}

// Key is a keyboard key. Printable characters are KeyRune with Event.Rune set.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCtrlC
)

// MouseButton is the button held during a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// Backend is a cell display with an input queue. Drawing calls may be made
// from any goroutine; PollEvent is called from the event loop only.
type Backend interface {
	// Init prepares the display. It must be called first.
	Init() error
	// Shutdown restores the display.
	Shutdown()

	Size() (width, height int)

	// SetCell and Fill ignore cells outside the display. GetCell returns
	// an empty cell there.
	SetCell(x, y int, cell core.Cell)
	GetCell(x, y int) core.Cell
	Fill(rect core.ScreenRect, cell core.Cell)
	Clear()

	// Show makes the drawing since the last Show visible.
	Show()

	// PollEvent blocks until an event is available.
	PollEvent() Event
	// PostEvent queues a synthetic event without blocking.
	PostEvent(ev Event)

	// EnableMouse turns on click, drag and motion reporting.
	EnableMouse()
	DisableMouse()
}
