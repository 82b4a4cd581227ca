package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores logger on ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithUserID tags every later log line of the request with the caller.
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With("user_id", userID))
}

// WithPrincipal adds the caller and their most senior role level.
func WithPrincipal(ctx context.Context, userID string, level int) context.Context {
	return WithContext(ctx, FromContext(ctx).With("user_id", userID, "role_level", level))
}
