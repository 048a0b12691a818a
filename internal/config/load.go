package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config location used when none is given.
const DefaultFile = "~/.config/rangescope/config.toml"

// DefaultPath returns DefaultFile with the home directory expanded.
func DefaultPath() (string, error) {
	return homedir.Expand(DefaultFile)
}

// Load resolves the configuration from defaults, the file at path and the
// environment, then validates it.
//
// An empty path falls back to $RANGESCOPE_CONFIG and then DefaultPath. A
// missing default file is not an error; a missing explicit file returns
// ErrFileNotFound.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env, ok := os.LookupEnv(EnvPrefix + "CONFIG"); ok && env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.Wrap(err, "resolving default config path")
		}
		path = p
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding %s", path)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(cfg, path, data); err != nil {
			return nil, err
		}
		cfg.Path = path
	case os.IsNotExist(err):
		if explicit {
			return nil, errors.Wrap(ErrFileNotFound, path)
		}
	default:
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Decode parses data into cfg using the format implied by path's
// extension. Fields absent from data keep their current value.
func Decode(cfg *Config, path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return decodeTOML(cfg, path, data)
	case ".yaml", ".yml":
		return decodeYAML(cfg, path, data)
	default:
		return errors.Wrap(ErrUnsupportedFormat, path)
	}
}

func decodeTOML(cfg *Config, path string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			pe.Message = "unknown keys:\n" + serr.String()
		}
		return pe
	}
	return nil
}

func decodeYAML(cfg *Config, path string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}
