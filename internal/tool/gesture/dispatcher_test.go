package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	kind string
	ev   GestureEvent
	move MoveEvent
}

type recordingTool struct {
	events []recorded
}

func (r *recordingTool) Move(ev MoveEvent) {
	r.events = append(r.events, recorded{kind: "move", move: ev})
}

func (r *recordingTool) PanStart(ev GestureEvent) {
	r.events = append(r.events, recorded{kind: "start", ev: ev})
}

func (r *recordingTool) Pan(ev GestureEvent) {
	r.events = append(r.events, recorded{kind: "pan", ev: ev})
}

func (r *recordingTool) PanEnd(ev GestureEvent) {
	r.events = append(r.events, recorded{kind: "end", ev: ev})
}

func (r *recordingTool) kinds() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.kind
	}
	return out
}

func TestDispatcherHover(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.HandlePointer(3, 4, false)

	require.Equal(t, []string{"move"}, tool.kinds())
	assert.Equal(t, MoveEvent{SX: 3, SY: 4}, tool.events[0].move)
	assert.False(t, d.Panning())
}

func TestDispatcherCumulativeDeltas(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.HandlePointer(10, 10, true)
	assert.True(t, d.Panning())
	d.HandlePointer(12, 10, true)
	d.HandlePointer(15, 8, true)
	d.HandlePointer(15, 8, false)

	require.Equal(t, []string{"start", "pan", "pan", "end"}, tool.kinds())
	assert.Equal(t, GestureEvent{SX: 10, SY: 10}, tool.events[0].ev)
	assert.Equal(t, GestureEvent{SX: 12, SY: 10, DeltaX: 2, DeltaY: 0}, tool.events[1].ev)
	assert.Equal(t, GestureEvent{SX: 15, SY: 8, DeltaX: 5, DeltaY: -2}, tool.events[2].ev)
	assert.Equal(t, 5.0, tool.events[3].ev.DeltaX)
	assert.False(t, d.Panning())
}

func TestDispatcherReleaseAtNewPositionPans(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.HandlePointer(0, 0, true)
	d.HandlePointer(4, 0, false)

	require.Equal(t, []string{"start", "pan", "end"}, tool.kinds())
	assert.Equal(t, 4.0, tool.events[1].ev.DeltaX)
}

func TestDispatcherReleaseAtOriginUndoesDrag(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.HandlePointer(30, 5, true)
	d.HandlePointer(35, 5, true)
	d.HandlePointer(30, 5, false)

	require.Equal(t, []string{"start", "pan", "pan", "end"}, tool.kinds())
	assert.Equal(t, 5.0, tool.events[1].ev.DeltaX)
	assert.Equal(t, GestureEvent{SX: 30, SY: 5}, tool.events[2].ev)
}

func TestDispatcherReleaseAtLastSampleSkipsPan(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.HandlePointer(0, 0, true)
	d.HandlePointer(0, 0, false)
	assert.Equal(t, []string{"start", "end"}, tool.kinds())
}

func TestDispatcherAcceptor(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool, WithAcceptor(func(x, y float64) bool { return x < 50 }))

	d.HandlePointer(60, 0, true)
	d.HandlePointer(65, 0, true)
	d.HandlePointer(65, 0, false)
	assert.Empty(t, tool.events)

	d.HandlePointer(66, 0, false)
	assert.Equal(t, []string{"move"}, tool.kinds())

	d.HandlePointer(10, 0, true)
	assert.Equal(t, []string{"move", "start"}, tool.kinds())
}

func TestDispatcherCancel(t *testing.T) {
	tool := &recordingTool{}
	d := NewDispatcher(tool)

	d.Cancel()
	assert.Empty(t, tool.events)

	d.HandlePointer(1, 1, true)
	d.HandlePointer(3, 1, true)
	d.Cancel()

	assert.Equal(t, []string{"start", "pan", "end"}, tool.kinds())
	assert.False(t, d.Panning())
}

func TestCursorSymbol(t *testing.T) {
	assert.Equal(t, '↔', CursorEWResize.Symbol())
	assert.Equal(t, '↕', CursorNSResize.Symbol())
	assert.Equal(t, '✥', CursorGrab.Symbol())
	assert.Equal(t, '·', CursorDefault.Symbol())

	var got Cursor
	CursorFunc(func(c Cursor) { got = c }).SetCursor(CursorGrab)
	assert.Equal(t, CursorGrab, got)
}
