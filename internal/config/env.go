package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RANGESCOPE_"

// LookupFunc reports the value of an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type envSetter func(cfg *Config, value string) error

// envMapping maps variable names (without prefix) to setters.
var envMapping = map[string]envSetter{
	"LOG_LEVEL": func(c *Config, v string) error { c.Logging.Level = v; return nil },
	"LOG_FILE":  func(c *Config, v string) error { c.Logging.File = v; return nil },

	"DATA_FILE":      func(c *Config, v string) error { c.Data.File = v; return nil },
	"DATA_SCRIPT":    func(c *Config, v string) error { c.Data.Script = v; return nil },
	"DATA_GENERATOR": func(c *Config, v string) error { c.Data.Generator = v; return nil },
	"DATA_POINTS":    intSetter(func(c *Config) *int { return &c.Data.Points }),
	"DATA_SEED": func(c *Config, v string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.Data.Seed = n
		return nil
	},

	"PLOT_X_SCALE":          func(c *Config, v string) error { c.Plot.XScale = v; return nil },
	"PLOT_Y_SCALE":          func(c *Config, v string) error { c.Plot.YScale = v; return nil },
	"PLOT_LOCALE":           func(c *Config, v string) error { c.Plot.Locale = v; return nil },
	"PLOT_BIND_X":           boolSetter(func(c *Config) *bool { return &c.Plot.BindX }),
	"PLOT_BIND_Y":           boolSetter(func(c *Config) *bool { return &c.Plot.BindY }),
	"PLOT_INITIAL_FRACTION": floatSetter(func(c *Config) *float64 { return &c.Plot.InitialFraction }),

	"OVERLAY_FILL_COLOR": func(c *Config, v string) error { c.Overlay.FillColor = v; return nil },
	"OVERLAY_LINE_COLOR": func(c *Config, v string) error { c.Overlay.LineColor = v; return nil },
	"OVERLAY_FILL_ALPHA": optionalFloatSetter(func(c *Config) **float64 { return &c.Overlay.FillAlpha }),
	"OVERLAY_LINE_ALPHA": optionalFloatSetter(func(c *Config) **float64 { return &c.Overlay.LineAlpha }),
	"OVERLAY_LINE_WIDTH": optionalFloatSetter(func(c *Config) **float64 { return &c.Overlay.LineWidth }),
	"OVERLAY_LINE_DASH": func(c *Config, v string) error {
		dash, err := parseIntList(v)
		if err != nil {
			return err
		}
		c.Overlay.LineDash = dash
		return nil
	},
}

// ApplyEnv overrides cfg with every RANGESCOPE_* variable lookup reports.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envMapping {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return errors.Wrapf(err, "environment variable %s%s", EnvPrefix, name)
		}
	}
	return nil
}

// EnvNames lists the recognized environment variables.
func EnvNames() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, EnvPrefix+name)
	}
	return names
}

func intSetter(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func floatSetter(field func(*Config) *float64) envSetter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func optionalFloatSetter(field func(*Config) **float64) envSetter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(c) = &f
		return nil
	}
}

// parseIntList parses "4,4" or "4 4".
func parseIntList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
