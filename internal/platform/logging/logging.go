// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).WarnContext(ctx, "failed to save actor",
//	    slog.String("operation", "save"),
//	    slog.String("actor_id", a.ID),
//	    slog.Any("error", err),
//	)
//
// Error and warning logs carry the operation name, the affected actor id when
// there is one, and the error chain under the "error" key.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error (case-insensitive); anything
// else means info. format "text" selects the key=value handler, every other
// value selects JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name onto slog.Level. It accepts the
// names slog itself understands ("debug", "INFO", "warn+2") and falls back
// to slog.LevelInfo for anything it cannot parse.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a copy of ctx carrying logger. The Logging middleware
// stores a request-scoped child logger this way so handlers and the turn
// controller log with the request ID attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger.
// Returns slog.Default() when ctx carries no logger, so callers never need a
// nil check.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
