package funcschema

// FunctionBuilder assembles a FunctionDescriptor with a fluent API. The
// builder is the statically-typed replacement for runtime signature
// introspection: the caller declares once what the signature looks like.
type FunctionBuilder struct {
	fd FunctionDescriptor
}

// NewFunction starts a descriptor for the named function.
func NewFunction(name string) *FunctionBuilder {
	return &FunctionBuilder{fd: FunctionDescriptor{Name: name}}
}

// Doc sets the docstring used as the schema description.
func (b *FunctionBuilder) Doc(doc string) *FunctionBuilder {
	b.fd.Doc = doc
	return b
}

// ParamOption adjusts a single parameter added via Param.
type ParamOption func(*Param)

// WithDefault marks the parameter as having a default value, excluding it
// from the schema's required list.
func WithDefault() ParamOption {
	return func(p *Param) {
		p.HasDefault = true
	}
}

// AsVariadic marks the parameter as variadic-positional.
func AsVariadic() ParamOption {
	return func(p *Param) {
		p.Kind = KindVariadic
	}
}

// AsVariadicKeyword marks the parameter as variadic-keyword.
func AsVariadicKeyword() ParamOption {
	return func(p *Param) {
		p.Kind = KindVariadicKeyword
	}
}

// Param appends a parameter in declaration order. Pass Untyped for a
// parameter without an annotation.
func (b *FunctionBuilder) Param(name string, t TypeAnnotation, opts ...ParamOption) *FunctionBuilder {
	p := Param{Name: name, Type: t}
	for _, opt := range opts {
		opt(&p)
	}
	b.fd.Params = append(b.fd.Params, p)
	return b
}

// Params appends pre-built parameters (e.g. from StructParams) in order.
func (b *FunctionBuilder) Params(params ...Param) *FunctionBuilder {
	b.fd.Params = append(b.fd.Params, params...)
	return b
}

// Returns sets the return annotation.
func (b *FunctionBuilder) Returns(t TypeAnnotation) *FunctionBuilder {
	b.fd.Return = t
	return b
}

// Source attaches the raw function body text for the interactive-input
// heuristic in Check.
func (b *FunctionBuilder) Source(text string) *FunctionBuilder {
	b.fd.Source = text
	return b
}

// Build returns the assembled descriptor. The builder may be reused; Build
// copies the parameter list.
func (b *FunctionBuilder) Build() FunctionDescriptor {
	fd := b.fd
	fd.Params = append([]Param(nil), b.fd.Params...)
	return fd
}
