package funcschema

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// describeOptions configure Describe. See DescribeOption.
type describeOptions struct {
	name       string
	doc        string
	paramNames []string
	source     string
}

// DescribeOption configures the reflection of a function into a descriptor.
type DescribeOption func(*describeOptions)

// WithName overrides the function name extracted from the symbol table.
func WithName(name string) DescribeOption {
	return func(o *describeOptions) {
		o.name = name
	}
}

// WithDoc sets the docstring; Go reflection cannot recover comments.
func WithDoc(doc string) DescribeOption {
	return func(o *describeOptions) {
		o.doc = doc
	}
}

// WithParamNames names the non-context parameters positionally. Go erases
// parameter names at runtime; unnamed parameters fall back to param0,
// param1, and so on.
func WithParamNames(names ...string) DescribeOption {
	return func(o *describeOptions) {
		o.paramNames = names
	}
}

// WithSource attaches the function's body text for the interactive-input
// heuristic, which reflection cannot see.
func WithSource(text string) DescribeOption {
	return func(o *describeOptions) {
		o.source = text
	}
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
)

// Describe reflects a live Go function into a FunctionDescriptor. A leading
// context.Context parameter is skipped, a trailing error result is ignored,
// and a variadic final parameter is tagged KindVariadic with its element
// type as annotation. Values that are not functions fail with a
// SignatureError.
//
// Descriptors from Describe never set HasDefault: Go has no parameter
// defaults, so every parameter lands in the schema's required list.
func Describe(fn any, opts ...DescribeOption) (FunctionDescriptor, error) {
	var o describeOptions
	for _, opt := range opts {
		opt(&o)
	}
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return FunctionDescriptor{}, &SignatureError{
			Name: o.name,
			Err:  fmt.Errorf("value of type %T is not a function", fn),
		}
	}
	t := v.Type()

	name := o.name
	if name == "" {
		name = functionName(v)
	}

	var params []Param
	nameIdx := 0
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if i == 0 && in.Implements(contextType) {
			continue
		}
		p := Param{Name: paramName(o.paramNames, nameIdx)}
		nameIdx++
		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Kind = KindVariadic
			p.Type = goAnnotation(in.Elem())
		} else {
			p.Type = goAnnotation(in)
		}
		params = append(params, p)
	}

	return FunctionDescriptor{
		Name:   name,
		Doc:    o.doc,
		Params: params,
		Return: returnAnnotation(t),
		Source: o.source,
	}, nil
}

// isNotAFunction distinguishes "not callable" from other reflection
// failures for CheckFunc's first gate step.
func isNotAFunction(fn any) bool {
	v := reflect.ValueOf(fn)
	return !v.IsValid() || v.Kind() != reflect.Func
}

// functionName resolves the symbol name of the function and keeps its last
// path segment, dropping the method-value suffix the runtime appends.
func functionName(v reflect.Value) string {
	full := runtime.FuncForPC(v.Pointer()).Name()
	if full == "" {
		return "func"
	}
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}

func paramName(names []string, idx int) string {
	if idx < len(names) && names[idx] != "" {
		return names[idx]
	}
	return fmt.Sprintf("param%d", idx)
}

// returnAnnotation maps the function's results: a trailing error is
// ignored, no remaining result means no annotation, one result maps through
// goAnnotation, and multiple results are opaque (not representable).
func returnAnnotation(t reflect.Type) TypeAnnotation {
	n := t.NumOut()
	if n > 0 && t.Out(n-1).Implements(errorType) {
		n--
	}
	switch n {
	case 0:
		return Untyped
	case 1:
		return goAnnotation(t.Out(0))
	default:
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = t.Out(i).String()
		}
		return Opaque("(" + strings.Join(parts, ", ") + ")")
	}
}

// goAnnotation maps a Go type onto the closed annotation set. time.Time and
// complex numbers land on the reject list, mirroring the datetime and
// complex entries; named structs become recognized object types; channels,
// functions, and non-empty interfaces do not denote schema types at all.
func goAnnotation(t reflect.Type) TypeAnnotation {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return TypeDateTime
	}
	switch t.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Complex64, reflect.Complex128:
		return TypeComplex
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map:
		return TypeObject
	case reflect.Struct:
		if t.Name() != "" {
			return NamedType(t.String())
		}
		return TypeObject
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Untyped
		}
		return Opaque(t.String())
	default:
		return Opaque(t.String())
	}
}
