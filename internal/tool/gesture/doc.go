// Package gesture turns raw pointer input into tool gestures.
//
// A plot tool receives two kinds of events:
//
//   - MoveEvent: the pointer moved with no button held (hover)
//   - GestureEvent: a pan gesture started, advanced, or ended
//
// Pan deltas are cumulative since the gesture started, not frame-to-frame.
// Tools that need incremental movement subtract the previous cumulative
// value themselves, which keeps rounding error from building up over long
// drags.
//
// The Dispatcher owns the single active pointer. It decides from button
// state whether an input is a hover, a pan start, a pan step, or a pan end
// and forwards it to one Tool:
//
//	d := gesture.NewDispatcher(tool, gesture.WithAcceptor(plotRect.Contains))
//	d.HandlePointer(x, y, pressed)
//
// Dispatcher is not safe for concurrent use; it is driven from the UI
// event loop.
package gesture
