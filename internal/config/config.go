package config

import (
	"fmt"
	"slices"

	"github.com/dshills/rangescope/internal/dataset"
	"github.com/dshills/rangescope/internal/logging"
	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/plot/scale"
	"github.com/dshills/rangescope/internal/renderer/core"
)

// Config is the complete rangescope configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Data    DataConfig    `toml:"data" yaml:"data"`
	Plot    PlotConfig    `toml:"plot" yaml:"plot"`
	Overlay OverlayConfig `toml:"overlay" yaml:"overlay"`

	// Path is the file the configuration was read from, empty when only
	// defaults and environment were used.
	Path string `toml:"-" yaml:"-"`
}

// LoggingConfig controls the log sink.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs while the UI runs.
	File string `toml:"file" yaml:"file"`
}

// DataConfig selects the series source. File wins over Script, Script wins
// over Generator.
type DataConfig struct {
	File      string `toml:"file" yaml:"file"`
	Script    string `toml:"script" yaml:"script"`
	Generator string `toml:"generator" yaml:"generator"`
	Points    int    `toml:"points" yaml:"points"`
	Seed      int64  `toml:"seed" yaml:"seed"`
}

// PlotConfig controls scales and which axes the range tool drives.
type PlotConfig struct {
	XScale string `toml:"x_scale" yaml:"x_scale"`
	YScale string `toml:"y_scale" yaml:"y_scale"`
	Locale string `toml:"locale" yaml:"locale"`

	BindX bool `toml:"bind_x" yaml:"bind_x"`
	BindY bool `toml:"bind_y" yaml:"bind_y"`

	// InitialFraction is the share of the data extent the detail plot
	// shows on startup, along each bound axis.
	InitialFraction float64 `toml:"initial_fraction" yaml:"initial_fraction"`
}

// OverlayConfig overrides the range overlay style. Unset fields keep the
// built-in value.
type OverlayConfig struct {
	FillColor string   `toml:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	FillAlpha *float64 `toml:"fill_alpha,omitempty" yaml:"fill_alpha,omitempty"`
	LineColor string   `toml:"line_color,omitempty" yaml:"line_color,omitempty"`
	LineAlpha *float64 `toml:"line_alpha,omitempty" yaml:"line_alpha,omitempty"`
	LineWidth *float64 `toml:"line_width,omitempty" yaml:"line_width,omitempty"`
	LineDash  []int    `toml:"line_dash,omitempty" yaml:"line_dash,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Data: DataConfig{
			Generator: "walk",
			Points:    2000,
			Seed:      1,
		},
		Plot: PlotConfig{
			XScale:          string(scale.KindLinear),
			YScale:          string(scale.KindLinear),
			Locale:          "en",
			BindX:           true,
			InitialFraction: 0.25,
		},
	}
}

// Apply returns style with every configured field replaced.
func (o OverlayConfig) Apply(style annotation.Style) annotation.Style {
	if o.FillColor != "" {
		style.FillColor = o.FillColor
	}
	if o.FillAlpha != nil {
		style.FillAlpha = *o.FillAlpha
	}
	if o.LineColor != "" {
		style.LineColor = o.LineColor
	}
	if o.LineAlpha != nil {
		style.LineAlpha = *o.LineAlpha
	}
	if o.LineWidth != nil {
		style.LineWidth = *o.LineWidth
	}
	if o.LineDash != nil {
		style.LineDash = slices.Clone(o.LineDash)
	}
	return style
}

// Validate checks every setting and returns the first invalid one as a
// *ValidationError.
func (c *Config) Validate() error {
	if !logging.ValidLogLevel(c.Logging.Level) {
		return &ValidationError{Key: "logging.level", Value: c.Logging.Level, Message: "must be debug, info, warn or error"}
	}

	if c.Data.File == "" && c.Data.Script == "" {
		if !slices.Contains(dataset.Generators(), c.Data.Generator) {
			return &ValidationError{
				Key:     "data.generator",
				Value:   c.Data.Generator,
				Message: fmt.Sprintf("must be one of %v", dataset.Generators()),
			}
		}
	}
	if c.Data.Points < 2 || c.Data.Points > dataset.MaxScriptPoints {
		return &ValidationError{
			Key:     "data.points",
			Value:   c.Data.Points,
			Message: fmt.Sprintf("must be between 2 and %d", dataset.MaxScriptPoints),
		}
	}

	if _, err := scale.ParseKind(c.Plot.XScale); err != nil {
		return &ValidationError{Key: "plot.x_scale", Value: c.Plot.XScale, Message: err.Error()}
	}
	if _, err := scale.ParseKind(c.Plot.YScale); err != nil {
		return &ValidationError{Key: "plot.y_scale", Value: c.Plot.YScale, Message: err.Error()}
	}
	if !(c.Plot.InitialFraction > 0 && c.Plot.InitialFraction <= 1) {
		return &ValidationError{Key: "plot.initial_fraction", Value: c.Plot.InitialFraction, Message: "must be in (0, 1]"}
	}

	return c.Overlay.validate()
}

func (o OverlayConfig) validate() error {
	colors := []struct {
		key string
		v   string
	}{
		{"overlay.fill_color", o.FillColor},
		{"overlay.line_color", o.LineColor},
	}
	for _, c := range colors {
		if c.v == "" {
			continue
		}
		if _, err := core.ColorFromHex(c.v); err != nil {
			return &ValidationError{Key: c.key, Value: c.v, Message: "must be a hex color"}
		}
	}

	alphas := []struct {
		key string
		v   *float64
	}{
		{"overlay.fill_alpha", o.FillAlpha},
		{"overlay.line_alpha", o.LineAlpha},
	}
	for _, a := range alphas {
		if a.v != nil && !(*a.v >= 0 && *a.v <= 1) {
			return &ValidationError{Key: a.key, Value: *a.v, Message: "must be in [0, 1]"}
		}
	}

	if o.LineWidth != nil && !(*o.LineWidth >= 0) {
		return &ValidationError{Key: "overlay.line_width", Value: *o.LineWidth, Message: "must not be negative"}
	}
	for _, d := range o.LineDash {
		if d < 0 {
			return &ValidationError{Key: "overlay.line_dash", Value: o.LineDash, Message: "entries must not be negative"}
		}
	}
	return nil
}
