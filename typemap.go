package funcschema

// annClass partitions annotations by how the two conversion temperaments
// treat them. The set is closed on purpose: the reject list and the
// default-to-string fallback are exhaustive at compile time rather than
// entries in an open map.
type annClass uint8

const (
	annNone      annClass = iota // no annotation
	annPrimitive                 // closed mapping: string, integer, number, boolean, array, object, null
	annRejected                  // explicit reject list: tuple, set, complex, datetime
	annNamed                     // a real named type outside the mapping; strict allows, permissive maps to string
	annOpaque                    // annotation text that does not denote a type at all
)

// TypeAnnotation is a semantic type marker on a parameter or return value.
// Use the package-level values (TypeString, TypeNumber, ...) for the closed
// primitive set, NamedType for recognized object types, and Opaque for
// annotation text that does not name a type. The zero value means
// unannotated.
type TypeAnnotation struct {
	class annClass
	name  string
}

// The closed primitive mapping. These convert to the schema type of the
// same name.
var (
	TypeString  = TypeAnnotation{annPrimitive, "string"}
	TypeInteger = TypeAnnotation{annPrimitive, "integer"}
	TypeNumber  = TypeAnnotation{annPrimitive, "number"}
	TypeBoolean = TypeAnnotation{annPrimitive, "boolean"}
	TypeArray   = TypeAnnotation{annPrimitive, "array"}
	TypeObject  = TypeAnnotation{annPrimitive, "object"}
	TypeNull    = TypeAnnotation{annPrimitive, "null"}
)

// The explicit reject list: value shapes with no faithful schema
// representation. Convert still emits "string" for them; Check disqualifies.
var (
	TypeTuple    = TypeAnnotation{annRejected, "tuple"}
	TypeSet      = TypeAnnotation{annRejected, "set"}
	TypeComplex  = TypeAnnotation{annRejected, "complex"}
	TypeDateTime = TypeAnnotation{annRejected, "datetime"}
)

// Untyped is the absent annotation. It is the zero TypeAnnotation.
var Untyped = TypeAnnotation{}

// NamedType marks an annotation as a recognized named type outside the
// primitive mapping (e.g. a domain struct). Check accepts it; Convert maps
// it to "string" as a documented loss of fidelity.
func NamedType(name string) TypeAnnotation {
	return TypeAnnotation{class: annNamed, name: name}
}

// Opaque marks annotation text that does not denote a type (e.g. a free-form
// string annotation). Check disqualifies it as unrecognized.
func Opaque(text string) TypeAnnotation {
	return TypeAnnotation{class: annOpaque, name: text}
}

// IsZero reports whether the annotation is absent.
func (a TypeAnnotation) IsZero() bool { return a.class == annNone }

// String returns the annotation's name, or "<none>" when absent.
func (a TypeAnnotation) String() string {
	if a.class == annNone {
		return "<none>"
	}
	return a.name
}

// schemaType is the permissive mapping: primitives keep their schema name,
// everything else falls back to "string".
func (a TypeAnnotation) schemaType() string {
	if a.class == annPrimitive {
		return a.name
	}
	return "string"
}

// rejected reports membership in the explicit reject list.
func (a TypeAnnotation) rejected() bool { return a.class == annRejected }

// opaque reports whether the annotation does not denote a type.
func (a TypeAnnotation) opaque() bool { return a.class == annOpaque }
