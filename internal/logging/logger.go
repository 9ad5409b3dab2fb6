package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration. Logs always
// go to stderr so stdout carries nothing but the deployment result.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg, os.Getenv("ONESHOT_LOG_LEVEL"))
}

func newLogger(w io.Writer, cfg *config.RuntimeConfig, envLevel string) *slog.Logger {
	level := slog.LevelWarn

	switch strings.ToLower(envLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// unknown value, keep default
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time in non-debug mode for cleaner output
			if a.Key == slog.TimeKey && !cfg.Debug {
				return slog.Attr{}
			}
			return a
		},
	}

	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, opts)).With("run", uuid.NewString()[:8])
}
