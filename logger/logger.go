// Package logger carries a structured logger through a context.
//
// Engine packages never log; the logger exists for command surfaces that
// want per-run attributes (run id, input path) on every record.
package logger

import (
	"context"

	"golang.org/x/exp/slog"
)

// ctxKey is unexported so no other package can collide with it.
type ctxKey struct{}

// For returns the logger stored in ctx by SetContext or With.
// Falls back to slog.Default when ctx carries none.
// Complexity: O(1).
func For(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// SetContext returns a child of ctx carrying l. A later SetContext on the
// child replaces l for everything derived from it.
func SetContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// With attaches args to the logger in ctx and returns the new context.
func With(ctx context.Context, args ...any) context.Context {
	return SetContext(ctx, For(ctx).With(args...))
}
