package funcschema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

// ErrNotAStruct is returned by StructParams for non-struct type arguments.
var ErrNotAStruct = errors.New("struct parameters require a struct type")

// StructParams reflects a Go argument struct into an ordered parameter
// list, one Param per exported field in declaration order. Field names come
// from json tags, annotations from the field's JSON Schema type, and fields
// tagged omitempty are treated as having defaults.
//
// Use it to declare a descriptor's parameters from the same struct the
// handler decodes its arguments into:
//
//	type AddArgs struct {
//	    A float64 `json:"a"`
//	    B float64 `json:"b"`
//	}
//	params, err := funcschema.StructParams[AddArgs]()
//	fd := funcschema.NewFunction("add_numbers").Params(params...).Build()
func StructParams[T any]() ([]Param, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	if schema == nil || schema.Type != "object" || schema.Properties == nil {
		return nil, fmt.Errorf("%w, got %T", ErrNotAStruct, v)
	}

	var params []Param
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		params = append(params, Param{
			Name:       pair.Key,
			Type:       annotationForProperty(pair.Value),
			HasDefault: !slices.Contains(schema.Required, pair.Key),
		})
	}
	return params, nil
}

// annotationForProperty maps a reflected property schema back onto the
// closed annotation set. Date-time strings land on the reject list so the
// strict gate treats them like any other datetime.
func annotationForProperty(s *jsonschema.Schema) TypeAnnotation {
	if s == nil {
		return Untyped
	}
	if s.Format == "date-time" {
		return TypeDateTime
	}
	switch s.Type {
	case "string":
		return TypeString
	case "integer":
		return TypeInteger
	case "number":
		return TypeNumber
	case "boolean":
		return TypeBoolean
	case "array":
		return TypeArray
	case "object":
		return TypeObject
	case "null":
		return TypeNull
	default:
		return Opaque(s.Type)
	}
}
