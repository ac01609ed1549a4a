package funcschema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for funcschema. Use errors.Is to check.
var (
	ErrSignatureUnavailable = errors.New("function signature unavailable")
	ErrIncompatible         = errors.New("function is not schema compatible")
	ErrNotRegistered        = errors.New("function not registered")
	ErrValidation           = errors.New("argument validation failed")
	ErrTimeout              = errors.New("function execution timeout")
	ErrShutdown             = errors.New("registry is shutting down")
)

// SignatureError reports that a function's signature could not be obtained
// at all, the only condition that aborts Convert or Check instead of being
// reported as a compatibility value. errors.Is(err, ErrSignatureUnavailable)
// matches it.
type SignatureError struct {
	Name string // function name, if known
	Err  error  // underlying cause, may be nil
}

func (e *SignatureError) Error() string {
	name := e.Name
	if name == "" {
		name = "<anonymous>"
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to get signature for function %s: %v", name, e.Err)
	}
	return fmt.Sprintf("failed to get signature for function %s", name)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// Is lets errors.Is match the ErrSignatureUnavailable sentinel.
func (e *SignatureError) Is(target error) bool { return target == ErrSignatureUnavailable }

// IncompatibleError is returned by Registry.Register when the strict gate
// refuses a function. It carries the full ordered reason list.
type IncompatibleError struct {
	Name    string
	Reasons []string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("function %q is not schema compatible: %s", e.Name, strings.Join(e.Reasons, "; "))
}

// Is lets errors.Is match the ErrIncompatible sentinel.
func (e *IncompatibleError) Is(target error) bool { return target == ErrIncompatible }

// ArgumentError is an error that should be sent back to the LLM for
// self-correction (invalid argument JSON, schema violation). Do not expose
// internal details through it. Err optionally wraps a sentinel
// (e.g. ErrValidation) for errors.Is.
type ArgumentError struct {
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid function arguments: %s", e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// SystemError represents an internal failure during execution (handler
// panic, marshaling failure). The LLM should not see the underlying message.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "internal system error during function execution"
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsArgumentError returns true if err is or wraps an ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// wrapJSONParseError returns an ArgumentError for JSON decode failures so
// parse errors read consistently wherever argument payloads enter.
func wrapJSONParseError(err error) error {
	return &ArgumentError{Reason: "json parse error: " + err.Error()}
}
