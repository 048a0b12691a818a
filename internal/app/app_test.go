package app

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rangescope/internal/config"
	"github.com/dshills/rangescope/internal/dataset"
	"github.com/dshills/rangescope/internal/logging"
	"github.com/dshills/rangescope/internal/renderer/backend"
	"github.com/dshills/rangescope/internal/tool/gesture"
)

func lineSeries() *dataset.Series {
	s := &dataset.Series{Name: "line"}
	for i := 0; i <= 100; i++ {
		s.Append(float64(i), float64(i))
	}
	return s
}

func quietLogger() (*logging.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	return logging.FromLogrus(l), hook
}

// newTestApp builds an application on an initialized 80x31 null backend
// without starting the event loop.
func newTestApp(t *testing.T, cfg *config.Config) (*Application, *backend.NullBackend) {
	t.Helper()
	logger, _ := quietLogger()
	app, err := New(lineSeries(), cfg, WithLogger(logger))
	require.NoError(t, err)

	nb := backend.NewNullBackend(80, 31)
	require.NoError(t, app.SetBackend(nb))
	require.NoError(t, nb.Init())
	app.layout()
	app.draw()
	return app, nb
}

func mouse(x, y int, pressed bool) backend.Event {
	ev := backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y}
	if pressed {
		ev.MouseButton = backend.MouseLeft
	}
	return ev
}

func key(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func send(t *testing.T, app *Application, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, app.handleBackendEvent(ev))
	}
}

func overviewMidRow(app *Application) int {
	r := app.Overview().Rect()
	return (r.Top + r.Bottom) / 2
}

func TestNewBindsDetailXByDefault(t *testing.T) {
	app, _ := newTestApp(t, nil)

	d := app.Detail()
	assert.Equal(t, 37.5, d.XRange.Start())
	assert.Equal(t, 62.5, d.XRange.End())
	assert.Equal(t, -5.0, d.YRange.Start())
	assert.Equal(t, 105.0, d.YRange.End())

	ov := app.Tool().Overlay
	require.NotNil(t, ov.Left)
	require.NotNil(t, ov.Right)
	assert.Equal(t, 37.5, *ov.Left)
	assert.Equal(t, 62.5, *ov.Right)
	assert.Nil(t, ov.Bottom)
	assert.Nil(t, ov.Top)

	assert.Contains(t, app.Overview().Annotations, ov)
	assert.NotContains(t, app.Detail().Annotations, ov)
}

func TestPanBodyShiftsDetailRange(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()

	lx, rx := xs.Compute(37.5), xs.Compute(62.5)
	mx := int(math.Round((lx + rx) / 2))
	my := overviewMidRow(app)

	send(t, app, mouse(mx, my, true))
	assert.Equal(t, "left|right", app.view.Sides().String())

	send(t, app, mouse(mx+5, my, true), mouse(mx+5, my, false))

	r := app.Detail().XRange
	assert.InDelta(t, xs.Invert(lx+5), r.Start(), 1e-9)
	assert.InDelta(t, xs.Invert(rx+5), r.End(), 1e-9)
	assert.InDelta(t, 25.0, r.End()-r.Start(), 1e-9)
	assert.InDelta(t, r.Start(), *app.Tool().Overlay.Left, 1e-12)
	assert.False(t, app.dispatch.Panning())
}

func TestReleaseAtPressPointRestoresRange(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()

	mx := int(math.Round(xs.Compute(50)))
	my := overviewMidRow(app)

	send(t, app, mouse(mx, my, true), mouse(mx+5, my, true))
	assert.Greater(t, app.Detail().XRange.Start(), 37.5)

	send(t, app, mouse(mx, my, false))

	r := app.Detail().XRange
	assert.InDelta(t, 37.5, r.Start(), 1e-9)
	assert.InDelta(t, 62.5, r.End(), 1e-9)
	assert.InDelta(t, 37.5, *app.Tool().Overlay.Left, 1e-9)
	assert.False(t, app.dispatch.Panning())
}

func TestDragLeftEdgeResizes(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()

	lx := int(math.Round(xs.Compute(37.5)))
	my := overviewMidRow(app)

	send(t, app, mouse(lx, my, true), mouse(lx-4, my, true), mouse(lx-4, my, false))

	r := app.Detail().XRange
	assert.InDelta(t, xs.Invert(xs.Compute(37.5)-4), r.Start(), 1e-9)
	assert.Equal(t, 62.5, r.End())
}

func TestPressOutsideOverviewIgnored(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()
	mx := int(math.Round((xs.Compute(37.5) + xs.Compute(62.5)) / 2))

	send(t, app, mouse(mx, 5, true), mouse(mx+10, 5, true), mouse(mx+10, 5, false))

	assert.Equal(t, 37.5, app.Detail().XRange.Start())
	assert.Equal(t, 62.5, app.Detail().XRange.End())
}

func TestHoverCursor(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()
	mx := int(math.Round((xs.Compute(37.5) + xs.Compute(62.5)) / 2))
	lx := int(math.Round(xs.Compute(37.5)))
	my := overviewMidRow(app)

	send(t, app, mouse(mx, my, false))
	assert.Equal(t, gesture.CursorGrab, app.Overview().Cursor())
	assert.Equal(t, '✥', []rune(app.StatusLine())[0])

	send(t, app, mouse(lx, my, false))
	assert.Equal(t, gesture.CursorEWResize, app.Overview().Cursor())

	send(t, app, mouse(mx, 2, false))
	assert.Equal(t, gesture.CursorDefault, app.Overview().Cursor())
}

func TestNudgeAndReset(t *testing.T) {
	app, _ := newTestApp(t, nil)
	xs := app.Overview().Frame().XScale()

	send(t, app, backend.Event{Type: backend.EventKey, Key: backend.KeyRight})
	assert.InDelta(t, xs.Invert(xs.Compute(37.5)+1), app.Detail().XRange.Start(), 1e-9)

	// y is unbound, so vertical nudges do nothing.
	send(t, app, backend.Event{Type: backend.EventKey, Key: backend.KeyUp})
	assert.Equal(t, -5.0, app.Detail().YRange.Start())

	send(t, app, key('r'))
	assert.Equal(t, 37.5, app.Detail().XRange.Start())
	assert.Equal(t, 62.5, app.Detail().XRange.End())
}

func TestNudgeRejectedAtBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Plot.InitialFraction = 1
	app, _ := newTestApp(t, cfg)

	send(t, app, backend.Event{Type: backend.EventKey, Key: backend.KeyLeft})
	assert.Equal(t, 0.0, app.Detail().XRange.Start())
	assert.Equal(t, 100.0, app.Detail().XRange.End())
}

func TestBindBothAxes(t *testing.T) {
	cfg := config.Default()
	cfg.Plot.BindY = true
	app, _ := newTestApp(t, cfg)

	ov := app.Tool().Overlay
	require.NotNil(t, ov.Bottom)
	assert.InDelta(t, 36.25, *ov.Bottom, 1e-9)
	assert.InDelta(t, 63.75, *ov.Top, 1e-9)

	send(t, app, backend.Event{Type: backend.EventKey, Key: backend.KeyUp})
	assert.Greater(t, app.Detail().YRange.Start(), 36.25)
	assert.Contains(t, app.StatusLine(), "y=[")
}

func TestNoRangesBound(t *testing.T) {
	cfg := config.Default()
	cfg.Plot.BindX = false
	logger, hook := quietLogger()

	app, err := New(lineSeries(), cfg, WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, app.Tool().Overlay.IsEmpty())
	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "RangeTool not configured with any Ranges." {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestApplyConfig(t *testing.T) {
	app, _ := newTestApp(t, nil)

	alpha := 0.9
	cfg := config.Default()
	cfg.Overlay.FillColor = "#00ff00"
	cfg.Overlay.FillAlpha = &alpha
	send(t, app, backend.Event{Type: backend.EventInterrupt, Payload: cfg})

	style := app.Tool().Overlay.Style
	assert.Equal(t, "#00ff00", style.FillColor)
	assert.Equal(t, 0.9, style.FillAlpha)
	assert.Equal(t, []int{4, 4}, style.LineDash)

	bad := config.Default()
	bad.Overlay.FillColor = "green-ish"
	app.ApplyConfig(bad)
	assert.Equal(t, "#00ff00", app.Tool().Overlay.Style.FillColor)
}

func TestStatusLine(t *testing.T) {
	app, nb := newTestApp(t, nil)

	line := app.StatusLine()
	assert.Contains(t, line, "default")
	assert.Contains(t, line, "x=[37.50, 62.50]")
	assert.NotContains(t, line, "y=[")
	assert.Contains(t, nb.Row(30), "x=[37.50, 62.50]")
}

func TestRunQuitKey(t *testing.T) {
	logger, _ := quietLogger()
	app, err := New(lineSeries(), nil, WithLogger(logger))
	require.NoError(t, err)

	nb := backend.NewNullBackend(80, 24)
	require.NoError(t, app.SetBackend(nb))
	nb.PostEvent(key('q'))

	err = app.Run(context.Background())
	assert.True(t, errors.Is(err, ErrQuit))
	assert.GreaterOrEqual(t, nb.ShowCount(), 1)
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(lineSeries(), nil)
	require.NoError(t, err)
	assert.Equal(t, ErrNoBackend, app.Run(context.Background()))
}

func TestRunStopsOnCancelAndShutdown(t *testing.T) {
	run := func(stop func(*Application, context.CancelFunc)) error {
		logger, _ := quietLogger()
		app, err := New(lineSeries(), nil, WithLogger(logger))
		require.NoError(t, err)
		require.NoError(t, app.SetBackend(backend.NewNullBackend(80, 24)))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- app.Run(ctx) }()
		stop(app, cancel)

		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return")
			return nil
		}
	}

	err := run(func(_ *Application, cancel context.CancelFunc) { cancel() })
	assert.ErrorIs(t, err, context.Canceled)

	err = run(func(app *Application, _ context.CancelFunc) { app.Shutdown() })
	assert.ErrorIs(t, err, ErrQuit)
}

func TestLoadSeries(t *testing.T) {
	s, err := LoadSeries(context.Background(), config.DataConfig{Generator: "sine", Points: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, s.Len())

	path := filepath.Join(t.TempDir(), "pts.csv")
	require.NoError(t, os.WriteFile(path, []byte("t,v\n2,1\n1,3\n"), 0o644))
	s, err = LoadSeries(context.Background(), config.DataConfig{File: path, Generator: "sine"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.X)

	_, err = LoadSeries(context.Background(), config.DataConfig{Generator: "nope", Points: 10})
	var ie *InitError
	assert.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, dataset.ErrUnknownGenerator)
}

func TestInitialWindow(t *testing.T) {
	lo, hi := initialWindow(0, 100, 0.5)
	assert.Equal(t, 25.0, lo)
	assert.Equal(t, 75.0, hi)

	lo, hi = initialWindow(0, 100, 1)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 100.0, hi)
}
