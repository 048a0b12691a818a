// Package app wires the detail and overview plots, the range tool and the
// terminal backend together and runs the event loop.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dshills/rangescope/internal/config"
	"github.com/dshills/rangescope/internal/dataset"
	"github.com/dshills/rangescope/internal/logging"
	"github.com/dshills/rangescope/internal/plot"
	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/plot/ranges"
	"github.com/dshills/rangescope/internal/plot/scale"
	"github.com/dshills/rangescope/internal/renderer/backend"
	"github.com/dshills/rangescope/internal/renderer/chart"
	"github.com/dshills/rangescope/internal/renderer/core"
	"github.com/dshills/rangescope/internal/tool/gesture"
	"github.com/dshills/rangescope/internal/tool/rangetool"
)

// Application owns the plots and the range tool and runs the event loop.
// Everything except Shutdown must be called from the goroutine running Run.
type Application struct {
	cfg    *config.Config
	logger *logging.Logger

	backend  backend.Backend
	renderer *chart.Renderer
	format   *chart.Formatter
	watcher  *config.Watcher

	detail   *plot.Plot
	overview *plot.Plot

	tool     *rangetool.Tool
	view     *rangetool.View
	dispatch *gesture.Dispatcher

	// home is the initial detail window, restored by reset.
	homeX, homeY ranges.Interval

	// Layout rectangles, recomputed on resize.
	detailArea   core.ScreenRect
	overviewArea core.ScreenRect
	statusRow    int

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the application logger.
func WithLogger(l *logging.Logger) Option {
	return func(app *Application) {
		if l != nil {
			app.logger = l
		}
	}
}

// WithConfigWatcher applies overlay style reloads from w while running.
// The application runs the watcher and stops it on exit.
func WithConfigWatcher(w *config.Watcher) Option {
	return func(app *Application) {
		app.watcher = w
	}
}

// New creates an application showing series.
func New(series *dataset.Series, cfg *config.Config, opts ...Option) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	app := &Application{
		cfg:    cfg,
		logger: logging.Default(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.logger = app.logger.WithComponent("app")

	xKind, err := scale.ParseKind(cfg.Plot.XScale)
	if err != nil {
		return nil, &InitError{Component: "plot", Err: err}
	}
	yKind, err := scale.ParseKind(cfg.Plot.YScale)
	if err != nil {
		return nil, &InitError{Component: "plot", Err: err}
	}

	app.detail = plot.New(series.Name, series)
	app.overview = plot.New("overview", series)
	for _, p := range []*plot.Plot{app.detail, app.overview} {
		p.XScaleKind, p.YScaleKind = xKind, yKind
	}

	app.homeX = app.detail.XBounds
	app.homeY = app.detail.YBounds
	if cfg.Plot.BindX {
		app.homeX.Start, app.homeX.End = initialWindow(app.homeX.Start, app.homeX.End, cfg.Plot.InitialFraction)
	}
	if cfg.Plot.BindY {
		app.homeY.Start, app.homeY.End = initialWindow(app.homeY.Start, app.homeY.End, cfg.Plot.InitialFraction)
	}
	app.detail.XRange.Set(app.homeX.Start, app.homeX.End)
	app.detail.YRange.Set(app.homeY.Start, app.homeY.End)

	overlay := annotation.DefaultRangeOverlay()
	overlay.Style = cfg.Overlay.Apply(overlay.Style)

	toolOpts := []rangetool.Option{
		rangetool.WithOverlay(overlay),
		rangetool.WithLogger(app.logger),
	}
	if cfg.Plot.BindX {
		toolOpts = append(toolOpts, rangetool.WithXRange(app.detail.XRange))
	}
	if cfg.Plot.BindY {
		toolOpts = append(toolOpts, rangetool.WithYRange(app.detail.YRange))
	}
	app.tool = rangetool.New(toolOpts...)
	app.overview.AddAnnotation(app.tool.Overlay)

	app.view = rangetool.NewView(app.tool, NewPlotHost(app.overview))
	app.view.Initialize()
	app.view.ConnectSignals()

	app.dispatch = gesture.NewDispatcher(
		NewOverviewTool(app.view, app.overview),
		gesture.WithAcceptor(func(x, y float64) bool {
			return app.overview.Rect().ContainsPoint(x, y)
		}),
	)

	return app, nil
}

// SetBackend sets the display backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	opts := chart.DefaultOptions()
	opts.Locale = app.cfg.Plot.Locale
	app.renderer = chart.New(b, opts)
	app.format = chart.NewFormatter(app.cfg.Plot.Locale)
	return nil
}

// Detail returns the plot whose ranges the tool drives.
func (app *Application) Detail() *plot.Plot {
	return app.detail
}

// Overview returns the plot carrying the range overlay.
func (app *Application) Overview() *plot.Plot {
	return app.overview
}

// Tool returns the range tool model.
func (app *Application) Tool() *rangetool.Tool {
	return app.tool
}

// Run initializes the backend and processes events until the user quits,
// ctx is cancelled or Shutdown is called. A user quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	app.backend.EnableMouse()
	defer app.view.Disconnect()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-ctx.Done():
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Payload: quitRequest{}})
		case <-app.done:
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Payload: quitRequest{}})
		}
	}()
	if app.watcher != nil {
		app.startWatcher(ctx)
	}

	app.layout()
	app.draw()
	app.logger.Info("running: x bound=%t y bound=%t", app.tool.XRange != nil, app.tool.YRange != nil)

	return app.eventLoop(ctx)
}

// Shutdown asks a running event loop to exit. It is safe to call from any
// goroutine and more than once.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
}

// ApplyConfig applies the reloadable parts of cfg. Only the overlay style
// changes while running.
func (app *Application) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if err := cfg.Validate(); err != nil {
		app.logger.Warn("ignoring reloaded config: %v", err)
		return
	}
	app.tool.Overlay.Style = cfg.Overlay.Apply(annotation.DefaultRangeOverlayStyle())
	app.cfg.Overlay = cfg.Overlay
	app.logger.Info("overlay style updated")
}

// startWatcher runs the config watcher and forwards reloads to the event
// loop as interrupts.
func (app *Application) startWatcher(ctx context.Context) {
	w := app.watcher
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			app.logger.Warn("config watcher stopped: %v", err)
		}
	}()
	go func() {
		for {
			select {
			case cfg, ok := <-w.Updates():
				if !ok {
					return
				}
				app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Payload: cfg})
			case err := <-w.Errors():
				app.logger.Warn("config reload: %v", err)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// quitRequest is the interrupt payload that stops the event loop.
type quitRequest struct{}
