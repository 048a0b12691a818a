package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rangescope/internal/renderer/core"
)

func newSimTerminal(t *testing.T) *Terminal {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := newTerminalWithScreen(sim)
	require.NoError(t, term.Init())
	sim.SetSize(20, 5)
	t.Cleanup(term.Shutdown)
	return term
}

func TestTerminalCellRoundTrip(t *testing.T) {
	term := newSimTerminal(t)

	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(255, 0, 0)).
		WithAttributes(core.AttrBold | core.AttrReverse)
	term.SetCell(3, 1, core.NewStyledCell('•', style))

	got := term.GetCell(3, 1)
	assert.Equal(t, '•', got.Rune)
	assert.Equal(t, core.ColorFromRGB(255, 0, 0), got.Style.Foreground)
	assert.True(t, got.Style.Background.IsDefault())
	assert.True(t, got.Style.Attributes.Has(core.AttrBold))
	assert.True(t, got.Style.Attributes.Has(core.AttrReverse))
	assert.False(t, got.Style.Attributes.Has(core.AttrItalic))
}

func TestTerminalFillClips(t *testing.T) {
	term := newSimTerminal(t)

	term.Fill(core.ScreenRect{Top: -2, Left: 18, Bottom: 2, Right: 40}, core.NewStyledCell('#', core.DefaultStyle()))
	assert.Equal(t, '#', term.GetCell(19, 0).Rune)
	assert.Equal(t, '#', term.GetCell(18, 1).Rune)
	assert.NotEqual(t, '#', term.GetCell(17, 1).Rune)
	assert.NotEqual(t, '#', term.GetCell(18, 2).Rune)
}

func TestTerminalPostEvent(t *testing.T) {
	term := newSimTerminal(t)

	term.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})
	term.PostEvent(Event{Type: EventInterrupt, Payload: 7})

	var got []Event
	for len(got) < 2 {
		ev := term.PollEvent()
		if ev.Type == EventKey || ev.Type == EventInterrupt {
			got = append(got, ev)
		}
	}
	assert.Equal(t, KeyRune, got[0].Key)
	assert.Equal(t, 'q', got[0].Rune)
	assert.Equal(t, 7, got[1].Payload)
}

func TestKeyMapRoundTrip(t *testing.T) {
	for tk, k := range keyMap {
		assert.Equal(t, tk, toTcellKey(k))
	}
	assert.Equal(t, tcell.KeyNUL, toTcellKey(KeyNone))
}

func TestFromTcellButtons(t *testing.T) {
	assert.Equal(t, MouseLeft, fromTcellButtons(tcell.Button1))
	assert.Equal(t, MouseRight, fromTcellButtons(tcell.Button2))
	assert.Equal(t, MouseMiddle, fromTcellButtons(tcell.Button3))
	assert.Equal(t, MouseNone, fromTcellButtons(tcell.ButtonNone))
}
