// Package main is the entry point for the rangescope plot viewer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/rangescope/internal/app"
	"github.com/dshills/rangescope/internal/config"
	"github.com/dshills/rangescope/internal/logging"
	"github.com/dshills/rangescope/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line flags.
type options struct {
	configPath string
	dataFile   string
	script     string
	generator  string
	points     int
	seed       int64
	xScale     string
	yScale     string
	logLevel   string
	logFile    string
	noX        bool
	bindY      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rangescope",
		Short: "Terminal plot viewer with an interactive range selection tool",
		Long: `rangescope draws a detail plot and an overview plot of one series.
Drag the highlighted box on the overview to pan the detail plot, or drag
one of its edges to resize the visible range.

Keys: arrows nudge the range, r resets it, q or Esc quits.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, opts, cfg); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+")")
	f.StringVarP(&opts.dataFile, "data", "d", "", "CSV file with x,y columns")
	f.StringVarP(&opts.script, "script", "s", "", "Lua script emitting points with point(x, y)")
	f.StringVarP(&opts.generator, "generator", "g", "", "built-in series generator (sine, walk)")
	f.IntVarP(&opts.points, "points", "n", 0, "number of generated points")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for generators")
	f.StringVar(&opts.xScale, "x-scale", "", "x axis scale (linear, log)")
	f.StringVar(&opts.yScale, "y-scale", "", "y axis scale (linear, log)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.noX, "no-x", false, "do not bind the horizontal range")
	f.BoolVar(&opts.bindY, "y", false, "bind the vertical range")

	return cmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, opts options, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("data") {
		cfg.Data.File = opts.dataFile
	}
	if f.Changed("script") {
		cfg.Data.Script = opts.script
	}
	if f.Changed("generator") {
		cfg.Data.Generator = opts.generator
	}
	if f.Changed("points") {
		cfg.Data.Points = opts.points
	}
	if f.Changed("seed") {
		cfg.Data.Seed = opts.seed
	}
	if f.Changed("x-scale") {
		cfg.Plot.XScale = opts.xScale
	}
	if f.Changed("y-scale") {
		cfg.Plot.YScale = opts.yScale
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if f.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	if opts.noX {
		cfg.Plot.BindX = false
	}
	if opts.bindY {
		cfg.Plot.BindY = true
	}
	return errors.Wrap(cfg.Validate(), "invalid flags")
}

// newLogger builds the process logger. The terminal belongs to the UI, so
// logs are discarded unless a log file is configured.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, io.Closer, error) {
	lc := logging.DefaultLoggerConfig()
	lc.Level = logging.ParseLogLevel(cfg.Level)
	lc.Output = io.Discard
	if cfg.File == "" {
		return logging.NewLogger(lc), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening log file")
	}
	lc.Output = f
	return logging.NewLogger(lc), f, nil
}

func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, closer, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetDefault(logger)
	logger.Info("rangescope %s starting", version)

	series, err := app.LoadSeries(ctx, cfg.Data)
	if err != nil {
		return err
	}

	appOpts := []app.Option{app.WithLogger(logger)}
	if cfg.Path != "" {
		w, err := config.NewWatcher(cfg.Path, config.WithWatchLogger(logger))
		if err != nil {
			logger.Warn("config live reload disabled: %v", err)
		} else {
			appOpts = append(appOpts, app.WithConfigWatcher(w))
		}
	}

	application, err := app.New(series, cfg, appOpts...)
	if err != nil {
		return err
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return errors.Wrap(err, "creating terminal")
	}
	if err := application.SetBackend(term); err != nil {
		return err
	}

	err = application.Run(ctx)
	if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
