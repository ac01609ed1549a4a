package funcschema

import (
	"fmt"
	"strings"
)

// Report is the outcome of the strict compatibility gate. Compatible is true
// iff Reasons is empty; the checker maintains that biconditional for every
// input. When Check ran with WithSchema and the function passed, Schema
// holds the converted descriptor.
//
// Callers wanting only the boolean read Compatible and discard the rest;
// there is no separate non-verbose mode.
type Report struct {
	Compatible bool
	Reasons    []string
	Schema     *Schema
}

// Reason joins the accumulated reasons into one human-readable string.
func (r Report) Reason() string {
	return strings.Join(r.Reasons, "; ")
}

// checkOptions configure Check. See CheckOption.
type checkOptions struct {
	withSchema bool
	markers    []string
}

// CheckOption configures a compatibility check.
type CheckOption func(*checkOptions)

// WithSchema makes Check also run Convert for a passing function and attach
// the result to the report. If conversion of an already-passing function
// fails unexpectedly, the report flips to incompatible with a wrapping
// reason instead of surfacing an error.
func WithSchema() CheckOption {
	return func(o *checkOptions) {
		o.withSchema = true
	}
}

// WithInteractiveMarkers replaces the substrings whose presence in the
// descriptor's source text marks a function as interactive. The defaults
// cover stdin reads and prompt calls.
func WithInteractiveMarkers(markers ...string) CheckOption {
	return func(o *checkOptions) {
		o.markers = markers
	}
}

// defaultInteractiveMarkers is the best-effort substring list for detecting
// functions that block on user input. A textual presence check, not
// control-flow analysis: a marker inside a comment or dead branch still
// disqualifies, and input routed through a helper escapes detection.
var defaultInteractiveMarkers = []string{
	"input(",
	"os.Stdin",
	"fmt.Scan",
	"bufio.NewScanner(os.Stdin",
	"term.ReadPassword",
}

// Check runs the strict pre-registration gate over a descriptor. It walks a
// fixed ordered checklist and accumulates every applicable reason rather
// than stopping at the first:
//
//  1. unavailable signature (descriptor without a name): single reason,
//     nothing else is checked;
//  2. per parameter, in order: missing annotation, then unrecognized or
//     reject-listed annotation;
//  3. one reason if any parameter is variadic, however many there are;
//  4. one reason if the source text contains an interactive-input marker;
//  5. the return annotation, when present, must be a mapped or named type
//     outside the reject list.
//
// Check is pure: same descriptor, same report, no hidden state.
func Check(fd FunctionDescriptor, opts ...CheckOption) Report {
	var o checkOptions
	for _, opt := range opts {
		opt(&o)
	}
	if fd.Name == "" {
		return Report{Reasons: []string{"Could not retrieve the function signature."}}
	}

	var reasons []string
	add := func(reason string) {
		for _, have := range reasons {
			if have == reason {
				return
			}
		}
		reasons = append(reasons, reason)
	}

	for _, p := range fd.Params {
		switch {
		case p.Type.IsZero():
			add(fmt.Sprintf("Parameter '%s' is missing a type annotation.", p.Name))
		case p.Type.opaque():
			add(fmt.Sprintf("Parameter '%s' has an unrecognized type annotation: %s.", p.Name, p.Type))
		case p.Type.rejected():
			add(fmt.Sprintf("Parameter '%s' has an unsupported type: %s.", p.Name, p.Type))
		}
	}

	for _, p := range fd.Params {
		if p.Kind == KindVariadic || p.Kind == KindVariadicKeyword {
			add("Function uses variadic positional or keyword arguments, which are not supported.")
			break
		}
	}

	if fd.Source != "" && containsInteractiveCall(fd.Source, o.markers) {
		add("Function reads interactive input, which requires user interaction.")
	}

	if !fd.Return.IsZero() && (fd.Return.rejected() || fd.Return.opaque()) {
		add(fmt.Sprintf("Return type '%s' is unsupported.", fd.Return))
	}

	report := Report{
		Compatible: len(reasons) == 0,
		Reasons:    reasons,
	}
	if report.Compatible && o.withSchema {
		schema, err := Convert(fd)
		if err != nil {
			return Report{
				Reasons: []string{fmt.Sprintf("Function is structurally valid but failed to convert: %v.", err)},
			}
		}
		report.Schema = &schema
	}
	return report
}

// CheckFunc reflects a live Go function and gates the resulting descriptor.
// A value that is not a function, or one whose signature cannot be read,
// yields a single-reason report; reflection never panics out of the gate.
// Options are forwarded to Check; use Describe directly when the descriptor
// needs parameter names or source text attached first.
func CheckFunc(fn any, opts ...CheckOption) Report {
	fd, err := Describe(fn)
	if err != nil {
		if isNotAFunction(fn) {
			return Report{Reasons: []string{"Provided value is not a function."}}
		}
		return Report{Reasons: []string{"Could not retrieve the function signature."}}
	}
	return Check(fd, opts...)
}

func containsInteractiveCall(source string, markers []string) bool {
	if markers == nil {
		markers = defaultInteractiveMarkers
	}
	for _, m := range markers {
		if strings.Contains(source, m) {
			return true
		}
	}
	return false
}
