package funcschema

import (
	"context"
	"time"
)

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	timeout        time.Duration
	maxConcurrency int
	recoverPanics  bool
	onBefore       func(context.Context, Call)
	onAfter        func(context.Context, Call, error, time.Duration)
}

// WithDefaultTimeout sets the default execution timeout for registered
// functions. Zero disables the deadline.
func WithDefaultTimeout(d time.Duration) RegistryOption {
	return func(o *registryOptions) {
		o.timeout = d
	}
}

// WithMaxConcurrency limits concurrent executions (semaphore).
// Pass 0 or negative to disable the semaphore.
func WithMaxConcurrency(n int) RegistryOption {
	return func(o *registryOptions) {
		o.maxConcurrency = n
	}
}

// WithRecoverPanics enables panic recovery in Execute (returns SystemError).
func WithRecoverPanics(enable bool) RegistryOption {
	return func(o *registryOptions) {
		o.recoverPanics = enable
	}
}

// WithOnBeforeExecute sets a hook called before each execution.
func WithOnBeforeExecute(fn func(context.Context, Call)) RegistryOption {
	return func(o *registryOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterExecute sets a hook called after each execution with the final
// error (nil on success) and the wall-clock duration.
func WithOnAfterExecute(fn func(context.Context, Call, error, time.Duration)) RegistryOption {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}
