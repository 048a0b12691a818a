package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rangescope/internal/config"
)

func parse(t *testing.T, args ...string) (options, *config.Config, error) {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))

	var opts options
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.dataFile, _ = cmd.Flags().GetString("data")
	opts.generator, _ = cmd.Flags().GetString("generator")
	opts.points, _ = cmd.Flags().GetInt("points")
	opts.yScale, _ = cmd.Flags().GetString("y-scale")
	opts.logLevel, _ = cmd.Flags().GetString("log-level")
	opts.noX, _ = cmd.Flags().GetBool("no-x")
	opts.bindY, _ = cmd.Flags().GetBool("y")

	cfg := config.Default()
	return opts, cfg, applyFlags(cmd, opts, cfg)
}

func TestApplyFlagsDefaultsUntouched(t *testing.T) {
	_, cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyFlagsOverrides(t *testing.T) {
	_, cfg, err := parse(t, "--generator", "sine", "-n", "300", "--y-scale", "log", "--no-x", "--y", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, "sine", cfg.Data.Generator)
	assert.Equal(t, 300, cfg.Data.Points)
	assert.Equal(t, "log", cfg.Plot.YScale)
	assert.False(t, cfg.Plot.BindX)
	assert.True(t, cfg.Plot.BindY)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyFlagsInvalid(t *testing.T) {
	_, _, err := parse(t, "--generator", "zigzag")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rs.log")
	logger, closer, err := newLogger(config.LoggingConfig{Level: "info", File: path})
	require.NoError(t, err)
	logger.Info("hello %d", 42)
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)

	logger, closer, err = newLogger(config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
