// Package logger provides the structured, levelled logger built on log/slog.
//
// Handlers and services obtain a request-scoped logger with WithCtx: the
// Logger middleware stores a *slog.Logger pre-tagged with the request_id in
// the request context, so every line from one request is correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order finalized", "email", email, "carts_cleared", n)
package logger

import (
	"context"
	"log/slog"
	"os"

	"bistro/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx, or the base
// logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level with the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level with the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level with the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level with the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
