package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/notes-backend/internal/config"
)

const serviceName = "notes-backend"

// NewLogger builds the process logger on stderr and installs it as the
// slog default. See newLogger for the format rules.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON unless cfg.Format is "text", in which case source
// locations are added for local debugging. Every record carries the service
// name, and durations are rendered as strings ("12.5ms") in both formats.
// Unknown levels fall back to info; "warn+2" style offsets are accepted.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: durationsAsStrings,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func durationsAsStrings(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.String(a.Key, a.Value.Duration().String())
	}
	return a
}
