package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rangescope/internal/renderer/core"
)

// Terminal draws plots on a tcell screen and reports mouse motion, so hover
// feedback works without a button held.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wraps an existing screen, e.g. a simulation screen.
func newTerminalWithScreen(s tcell.Screen) *Terminal {
	return &Terminal{screen: s}
}

func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.locked(func(s tcell.Screen) { s.Fini() })
}

func (t *Terminal) Size() (w, h int) {
	t.locked(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
	})
}

func (t *Terminal) GetCell(x, y int) (cell core.Cell) {
	t.locked(func(s tcell.Screen) {
		r, _, style, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		cell = core.Cell{Rune: r, Width: core.RuneWidth(r), Style: fromTcellStyle(style)}
	})
	return cell
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.locked(func(s tcell.Screen) {
		w, h := s.Size()
		clip := rect.Intersection(core.RectFromSize(0, 0, h, w))
		style := toTcellStyle(cell.Style)
		for y := clip.Top; y < clip.Bottom; y++ {
			for x := clip.Left; x < clip.Right; x++ {
				s.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	})
}

func (t *Terminal) Clear() {
	t.locked(func(s tcell.Screen) { s.Clear() })
}

func (t *Terminal) Show() {
	t.locked(func(s tcell.Screen) { s.Show() })
}

// PollEvent blocks for the next event. It returns EventNone once the
// screen has been shut down.
func (t *Terminal) PollEvent() Event {
	return fromTcellEvent(t.screen.PollEvent())
}

// PostEvent queues key and interrupt events. Other types are dropped, as
// are events that do not fit in tcell's queue.
func (t *Terminal) PostEvent(ev Event) {
	var te tcell.Event
	switch ev.Type {
	case EventKey:
		te = tcell.NewEventKey(toTcellKey(ev.Key), ev.Rune, tcell.ModNone)
	case EventInterrupt:
		te = tcell.NewEventInterrupt(ev.Payload)
	default:
		return
	}
	_ = t.screen.PostEvent(te)
}

func (t *Terminal) EnableMouse() {
	t.locked(func(s tcell.Screen) { s.EnableMouse(tcell.MouseMotionEvents) })
}

func (t *Terminal) DisableMouse() {
	t.locked(func(s tcell.Screen) { s.DisableMouse() })
}

// attrMap pairs cell attributes with their tcell counterparts.
var attrMap = []struct {
	core  core.Attribute
	tcell tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrItalic, tcell.AttrItalic},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

func toTcellColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcellColor(c tcell.Color) core.Color {
	if c == tcell.ColorDefault {
		return core.ColorDefault
	}
	r, g, b := c.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

func toTcellStyle(s core.Style) tcell.Style {
	var mask tcell.AttrMask
	for _, a := range attrMap {
		if s.Attributes.Has(a.core) {
			mask |= a.tcell
		}
	}
	return tcell.StyleDefault.
		Foreground(toTcellColor(s.Foreground)).
		Background(toTcellColor(s.Background)).
		Attributes(mask)
}

func fromTcellStyle(ts tcell.Style) core.Style {
	fg, bg, mask := ts.Decompose()
	var attrs core.Attribute
	for _, a := range attrMap {
		if mask&a.tcell != 0 {
			attrs |= a.core
		}
	}
	return core.Style{
		Foreground: fromTcellColor(fg),
		Background: fromTcellColor(bg),
		Attributes: attrs,
	}
}

// keyMap lists the keys the viewer understands.
var keyMap = map[tcell.Key]Key{
	tcell.KeyRune:   KeyRune,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyCtrlC:  KeyCtrlC,
}

func toTcellKey(k Key) tcell.Key {
	for tk, key := range keyMap {
		if key == k {
			return tk
		}
	}
	return tcell.KeyNUL
}

// fromTcellButtons maps tcell's button mask, where Button2 is the right
// button and Button3 the middle one.
func fromTcellButtons(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button3 != 0:
		return MouseMiddle
	case b&tcell.Button2 != 0:
		return MouseRight
	}
	return MouseNone
}

func fromTcellEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: keyMap[e.Key()], Rune: e.Rune()}
	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseButton: fromTcellButtons(e.Buttons())}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Payload: e.Data()}
	}
	return Event{Type: EventNone}
}
