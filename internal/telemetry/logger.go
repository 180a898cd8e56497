// Package telemetry builds the service's logger, tracer provider and
// Prometheus metrics.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/blockhint/internal/config"
)

// NewLogger returns a structured logger writing to w in the configured
// format and level.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "json", "":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", cfg.Format)
}
