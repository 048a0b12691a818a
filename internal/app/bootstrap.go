package app

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dshills/rangescope/internal/config"
	"github.com/dshills/rangescope/internal/dataset"
)

// LoadSeries loads the series selected by cfg. A CSV file takes precedence
// over a Lua script, which takes precedence over a built-in generator.
func LoadSeries(ctx context.Context, cfg config.DataConfig) (*dataset.Series, error) {
	var (
		s   *dataset.Series
		err error
	)
	switch {
	case cfg.File != "":
		s, err = dataset.LoadCSV(cfg.File)
	case cfg.Script != "":
		s, err = dataset.RunLuaFile(ctx, cfg.Script)
	default:
		s, err = dataset.Generate(cfg.Generator, cfg.Points, cfg.Seed)
	}
	if err != nil {
		return nil, &InitError{Component: "dataset", Err: err}
	}
	if s.Len() < 2 {
		return nil, &InitError{Component: "dataset", Err: errors.Wrapf(dataset.ErrEmptySeries, "%d points", s.Len())}
	}
	s.Sort()
	return s, nil
}

// initialWindow returns the centered share frac of bounds.
func initialWindow(start, end, frac float64) (float64, float64) {
	if frac <= 0 || frac >= 1 {
		return start, end
	}
	w := end - start
	lo := start + w*(1-frac)/2
	return lo, lo + w*frac
}
