package funcschema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// Handler executes one registered function: validated argument JSON in,
// result JSON out. Handlers must honor ctx cancellation.
type Handler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// Call is a single execution request, as produced by the LLM.
type Call struct {
	ID       string
	Function string
	Args     json.RawMessage
}

// registration pairs a gated descriptor with its compiled schema artifacts.
// raw keeps the unwrapped handler so Use can re-apply middlewares from
// scratch without double-wrapping.
type registration struct {
	descriptor FunctionDescriptor
	schema     Schema
	validator  *ArgumentValidator
	raw        Handler
	handler    Handler
}

// Registry holds schema-compatible functions and executes calls against
// them with argument validation, timeout, a concurrency semaphore, and
// optional panic recovery. Register is the enforcement point of the strict
// gate: a descriptor that fails Check never gets in.
type Registry struct {
	mu          sync.Mutex
	funcs       map[string]*registration
	middlewares []Middleware
	sem         chan struct{}
	opts        registryOptions
	done        chan struct{}
	running     sync.WaitGroup
}

// NewRegistry creates a Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{
		timeout:        5 * time.Second,
		maxConcurrency: 10,
		recoverPanics:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	var sem chan struct{}
	if o.maxConcurrency > 0 {
		sem = make(chan struct{}, o.maxConcurrency)
	}
	return &Registry{
		funcs: make(map[string]*registration),
		sem:   sem,
		opts:  o,
		done:  make(chan struct{}),
	}
}

// Register gates the descriptor through Check and, when it passes, converts
// it, compiles its argument validator, and stores the handler. A failing
// descriptor is refused with an IncompatibleError carrying every reason.
// Registering an existing name replaces it. Safe for concurrent use.
func (r *Registry) Register(fd FunctionDescriptor, h Handler) error {
	if h == nil {
		return fmt.Errorf("handler for %q must not be nil", fd.Name)
	}
	report := Check(fd, WithSchema())
	if !report.Compatible {
		return &IncompatibleError{Name: fd.Name, Reasons: report.Reasons}
	}
	validator, err := CompileArguments(*report.Schema)
	if err != nil {
		return fmt.Errorf("compile arguments for %q: %w", fd.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reg := &registration{
		descriptor: fd,
		schema:     *report.Schema,
		validator:  validator,
		raw:        h,
	}
	reg.handler = wrapHandler(fd.Name, h, r.middlewares)
	r.funcs[fd.Name] = reg
	return nil
}

// Schema returns the converted schema for a registered function.
func (r *Registry) Schema(name string) (Schema, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.funcs[name]
	if !ok {
		return Schema{}, false
	}
	return reg.schema, true
}

// Schemas returns all registered schemas sorted by function name, for
// exporting to a tool-calling request in deterministic order.
func (r *Registry) Schemas() []Schema {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Schema, 0, len(names))
	for _, name := range names {
		out = append(out, r.funcs[name].schema)
	}
	return out
}

// Use stores the middlewares and re-applies them from scratch to every
// registered handler (onion order: first middleware is outermost).
// Functions registered later get them too. Calling Use again replaces the
// chain, rewrapping from raw handlers to avoid double-wrapping.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, reg := range r.funcs {
		reg.handler = wrapHandler(name, reg.raw, middlewares)
	}
}

func wrapHandler(name string, h Handler, middlewares []Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](name, h)
	}
	return h
}

// Execute validates the call's arguments against the function's schema and
// runs its handler under the registry's timeout and semaphore. Validation
// failures return ArgumentError values fit for model self-correction;
// recovered panics come back as SystemError.
func (r *Registry) Execute(ctx context.Context, call Call) (result json.RawMessage, err error) {
	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		return nil, ErrShutdown
	default:
	}
	reg, ok := r.funcs[call.Function]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, call.Function)
	}
	r.running.Add(1)
	r.mu.Unlock()

	if err = r.acquireSemaphore(ctx); err != nil {
		r.running.Done()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer r.releaseSemaphore()
	defer r.running.Done()

	if r.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r.opts.onAfter != nil {
			r.opts.onAfter(ctx, call, err, time.Since(start))
		}
	}()
	if r.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				result = nil
				err = &SystemError{Err: &panicError{p: p}}
			}
		}()
	}

	if r.opts.onBefore != nil {
		r.opts.onBefore(ctx, call)
	}

	if err = reg.validator.Validate(call.Args); err != nil {
		return nil, err
	}
	return reg.handler(ctx, call.Args)
}

// ExecuteBatch runs all calls in parallel and returns results in call
// order. One failing call does not cancel the others; each Result carries
// its own error.
func (r *Registry) ExecuteBatch(ctx context.Context, calls []Call) []Result {
	results := make([]Result, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		i, call := i, call
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := r.Execute(ctx, call)
			results[i] = Result{CallID: call.ID, Function: call.Function, Data: data, Err: err}
		}()
	}
	wg.Wait()
	return results
}

// Result is the outcome of one call in ExecuteBatch.
type Result struct {
	CallID   string
	Function string
	Data     json.RawMessage
	Err      error
}

func (r *Registry) acquireSemaphore(ctx context.Context) error {
	if r.sem == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case r.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Registry) releaseSemaphore() {
	if r.sem != nil {
		<-r.sem
	}
}

// Shutdown closes the registry for new calls and waits for in-flight
// executions or ctx to cancel.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		return nil
	default:
		close(r.done)
	}
	r.mu.Unlock()
	done := make(chan struct{})
	go func() {
		r.running.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// panicError wraps a recovered panic value for SystemError.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
