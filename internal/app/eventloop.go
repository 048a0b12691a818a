package app

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/dshills/rangescope/internal/config"
	"github.com/dshills/rangescope/internal/renderer/backend"
	"github.com/dshills/rangescope/internal/renderer/core"
	"github.com/dshills/rangescope/internal/tool/rangetool"
)

// eventLoop polls the backend until quit.
func (app *Application) eventLoop(ctx context.Context) error {
	for {
		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) && ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
	}
}

// handleBackendEvent processes a backend event and redraws.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.layout()
	case backend.EventKey:
		if err := app.handleKeyEvent(ev); err != nil {
			return err
		}
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	case backend.EventInterrupt:
		if err := app.handleInterrupt(ev.Payload); err != nil {
			return err
		}
	default:
		return nil
	}
	app.draw()
	return nil
}

// handleKeyEvent handles quit, reset and keyboard nudges.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyLeft:
		app.nudge(-1, 0)
	case backend.KeyRight:
		app.nudge(1, 0)
	case backend.KeyUp:
		app.nudge(0, -1)
	case backend.KeyDown:
		app.nudge(0, 1)
	case backend.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return ErrQuit
		case 'r', 'R':
			app.reset()
		}
	}
	return nil
}

// handleMouseEvent feeds the pointer to the gesture dispatcher. Only the
// left button drives pans.
func (app *Application) handleMouseEvent(ev backend.Event) {
	app.dispatch.HandlePointer(float64(ev.MouseX), float64(ev.MouseY), ev.MouseButton == backend.MouseLeft)
}

func (app *Application) handleInterrupt(payload any) error {
	switch p := payload.(type) {
	case quitRequest:
		app.dispatch.Cancel()
		return ErrQuit
	case *config.Config:
		app.ApplyConfig(p)
	}
	return nil
}

// nudge shifts the bound ranges by whole overview cells, subject to the
// same bounds check as a pan.
func (app *Application) nudge(dx, dy float64) {
	frame := app.overview.Frame()
	if dx != 0 {
		rangetool.UpdateRange(app.tool.XRange, frame.XScale(), dx, frame.XRange())
	}
	if dy != 0 {
		rangetool.UpdateRange(app.tool.YRange, frame.YScale(), dy, frame.YRange())
	}
}

// reset restores the initial detail window.
func (app *Application) reset() {
	app.dispatch.Cancel()
	if app.tool.XRange != nil {
		app.tool.XRange.Set(app.homeX.Start, app.homeX.End)
	}
	if app.tool.YRange != nil {
		app.tool.YRange.Set(app.homeY.Start, app.homeY.End)
	}
}

// layout splits the screen into the detail plot, the overview plot and a
// status row.
func (app *Application) layout() {
	w, h := app.backend.Size()
	app.statusRow = h - 1

	avail := max(h-1, 0)
	overviewH := min(max(avail/3, 7), avail)
	detailH := avail - overviewH

	app.detailArea = core.RectFromSize(0, 0, detailH, w)
	app.overviewArea = core.RectFromSize(detailH, 0, overviewH, w)
	app.renderer.Layout(app.overview, app.overviewArea)
}

// draw renders both plots and the status line.
func (app *Application) draw() {
	app.backend.Clear()
	// The detail y labels follow its visible range, so its frame may move.
	app.renderer.Layout(app.detail, app.detailArea)
	app.renderer.Render(app.detail, app.detailArea)
	app.renderer.Render(app.overview, app.overviewArea)
	app.drawStatus()
	app.backend.Show()
}

// StatusLine returns the status text: the requested cursor, the grabbed
// sides and the bound ranges.
func (app *Application) StatusLine() string {
	s := fmt.Sprintf("%c %-9s", app.overview.Cursor().Symbol(), app.overview.Cursor())
	if sides := app.view.Sides(); sides != rangetool.SideNone {
		s += " [" + sides.String() + "]"
	}
	if r := app.tool.XRange; r != nil {
		s += fmt.Sprintf("  x=[%s, %s]", app.format.Format(r.Start(), 2), app.format.Format(r.End(), 2))
	}
	if r := app.tool.YRange; r != nil {
		s += fmt.Sprintf("  y=[%s, %s]", app.format.Format(r.Start(), 2), app.format.Format(r.End(), 2))
	}
	return s + "  q:quit r:reset"
}

func (app *Application) drawStatus() {
	if app.statusRow < 0 {
		return
	}
	style := core.DefaultStyle().WithAttributes(core.AttrReverse)
	w, _ := app.backend.Size()
	app.backend.Fill(core.RectFromSize(app.statusRow, 0, 1, w), core.NewStyledCell(' ', style))

	x := 0
	for _, r := range app.StatusLine() {
		if x >= w {
			break
		}
		app.backend.SetCell(x, app.statusRow, core.NewStyledCell(r, style))
		x += core.RuneWidth(r)
	}
}
