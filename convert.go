package funcschema

import "strings"

// Convert builds a Schema from a descriptor, permissively: unannotated or
// unmapped parameter types default to "string", variadic parameters are
// listed like normal ones, and nothing about the parameter list can fail.
// The only error is a SignatureError for a descriptor with no name, the
// marker of an uninspectable callable.
//
// Properties keep the descriptor's parameter order; required lists exactly
// the parameters without defaults, in that same order.
func Convert(fd FunctionDescriptor) (Schema, error) {
	if fd.Name == "" {
		return Schema{}, &SignatureError{Err: ErrSignatureUnavailable}
	}
	props := make([]Property, 0, len(fd.Params))
	var required []string
	for _, p := range fd.Params {
		props = append(props, Property{Name: p.Name, Type: p.Type.schemaType()})
		if !p.HasDefault {
			required = append(required, p.Name)
		}
	}
	return Schema{
		Kind:        KindFunction,
		Name:        fd.Name,
		Description: strings.TrimSpace(fd.Doc),
		Parameters: ParameterSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}, nil
}
