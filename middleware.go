package funcschema

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Middleware wraps a registered function's Handler with cross-cutting
// behavior (logging, recovery, timeout). name is the function being
// wrapped. Apply through Registry.Use.
type Middleware func(name string, next Handler) Handler

// WithLogging returns a middleware that logs start, end, duration, and
// errors through the given structured logger.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(name string, next Handler) Handler {
		return func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
			logger.Info("function start", "function", name)
			start := time.Now()
			res, err := next(ctx, args)
			dur := time.Since(start)
			if err != nil {
				logger.Error("function error", "function", name, "duration", dur, "error", err)
				return nil, err
			}
			logger.Info("function end", "function", name, "duration", dur)
			return res, nil
		}
	}
}

// WithRecovery returns a middleware that recovers handler panics and
// returns them as SystemError.
func WithRecovery() Middleware {
	return func(_ string, next Handler) Handler {
		return func(ctx context.Context, args json.RawMessage) (res json.RawMessage, err error) {
			defer func() {
				if p := recover(); p != nil {
					res = nil
					err = &SystemError{Err: &panicError{p: p}}
				}
			}()
			return next(ctx, args)
		}
	}
}

// WithHandlerTimeout returns a middleware enforcing a per-handler deadline.
// When the registry default timeout also applies, the effective deadline is
// whichever expires first.
func WithHandlerTimeout(d time.Duration) Middleware {
	return func(_ string, next Handler) Handler {
		return func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
			if d <= 0 {
				return next(ctx, args)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, args)
		}
	}
}
