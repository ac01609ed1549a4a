package funcschema

// ParamKind classifies how a parameter accepts arguments. Variadic kinds are
// representable in a descriptor but rejected by the strict Check gate, since
// an arbitrary argument count cannot be expressed in the schema format.
type ParamKind uint8

const (
	// KindNormal is a plain positional-or-named parameter.
	KindNormal ParamKind = iota
	// KindVariadic accepts any number of positional arguments.
	KindVariadic
	// KindVariadicKeyword accepts any number of named arguments.
	KindVariadicKeyword
)

// Param is one entry in a FunctionDescriptor's ordered parameter list.
type Param struct {
	Name string
	// Type is the parameter's annotation. The zero value (Untyped) means
	// the parameter carries no annotation.
	Type TypeAnnotation
	// HasDefault marks parameters that may be omitted by the caller; they
	// are left out of the schema's required list.
	HasDefault bool
	Kind       ParamKind
}

// FunctionDescriptor is an explicit, caller-built description of a callable.
// It is a value object: Convert and Check never mutate it, and descriptors
// are safe to share between goroutines.
//
// Build one with NewFunction, reflect one from a Go function with Describe,
// or populate the fields directly.
type FunctionDescriptor struct {
	// Name is the identifier the schema (and the model) will use.
	Name string
	// Doc becomes the schema description, verbatim after whitespace trim.
	Doc string
	// Params in declaration order. Order is preserved in the schema's
	// properties and required lists.
	Params []Param
	// Return is the optional return annotation. Untyped means absent,
	// which is always acceptable to Check.
	Return TypeAnnotation
	// Source optionally carries the raw function body text. It feeds only
	// the interactive-input heuristic in Check; conversion ignores it.
	Source string
}
