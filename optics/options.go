package optics

import (
	"context"
	"log/slog"
)

// LensOption configures lenses built by PathLens and ParseLens.
type LensOption func(*lensConfig)

type lensConfig struct {
	logger *slog.Logger
}

// WithLogger sends absent-focus and rejected-replace diagnostics to logger.
// Absent steps are logged at debug, type mismatches on replace at warn.
func WithLogger(logger *slog.Logger) LensOption {
	return func(c *lensConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newLensConfig(opts []LensOption) lensConfig {
	cfg := lensConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c lensConfig) logStep(level slog.Level, msg string, path Path, err *stepError) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, level) {
		return
	}
	c.logger.LogAttrs(ctx, level, msg,
		slog.String("path", path.String()),
		slog.Int("step", err.at),
		slog.String("reason", err.reason))
}

func (c lensConfig) logAbsent(path Path, err *stepError) {
	c.logStep(slog.LevelDebug, "optics: focus absent", path, err)
}

func (c lensConfig) logRejected(path Path, err *stepError) {
	level := slog.LevelDebug
	if err.mismatch {
		level = slog.LevelWarn
	}
	c.logStep(level, "optics: replace skipped", path, err)
}
