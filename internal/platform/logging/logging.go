// Package logging builds the service's slog logger and carries it through
// request contexts.
//
// The HTTP middleware stores a child logger holding request_id and
// correlation_id, and command routes add aggregate_kind and aggregate_id with
// With, so everything below the handler can log through FromContext:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "unit of work commit failed",
//	    slog.String("operation", "uow.End"),
//	    slog.String("collection", name),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation and the entity and pass the whole error
// chain through slog.Any("error", err). Secrets are scrubbed by the handler
// New installs; see redact_handler.go.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is any slog level name ("debug",
// "info", "warn", "error", optionally with an offset such as "info+2");
// anything unparseable means info. format "text" selects slog's text
// handler, anything else JSON. Debug logging also records the call site.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger also carries args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
