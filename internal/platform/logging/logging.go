// Package logging carries a request-scoped slog.Logger through
// context.Context so services log with whatever identifiers the caller
// attached (user, budget, command invocation).
package logging

import (
	"context"
	"log/slog"
)

// contextKey is a private type so logger storage cannot collide with other
// context values.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the context-scoped logger, falling back to the default
// logger when none was attached.
func FromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}

	return logger
}
