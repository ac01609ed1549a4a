package funcschema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Compatible(t *testing.T) {
	fd := NewFunction("add_numbers").
		Doc("Adds two numbers.").
		Param("a", TypeNumber).
		Param("b", TypeNumber).
		Returns(TypeNumber).
		Build()

	report := Check(fd)
	assert.True(t, report.Compatible)
	assert.Empty(t, report.Reasons)
	assert.Nil(t, report.Schema, "schema only attached with WithSchema")
	assert.Equal(t, "", report.Reason())
}

func TestCheck_WithSchema(t *testing.T) {
	fd := NewFunction("add_numbers").
		Param("a", TypeNumber).
		Param("b", TypeNumber).
		Build()

	report := Check(fd, WithSchema())
	require.True(t, report.Compatible)
	require.NotNil(t, report.Schema)
	assert.Equal(t, "add_numbers", report.Schema.Name)
	assert.Equal(t, []string{"a", "b"}, report.Schema.Parameters.Required)
}

func TestCheck_MissingAnnotation(t *testing.T) {
	fd := NewFunction("example_function").
		Param("x", Untyped).
		Build()

	report := Check(fd)
	assert.False(t, report.Compatible)
	assert.Equal(t, []string{"Parameter 'x' is missing a type annotation."}, report.Reasons)
}

func TestCheck_RejectedTypes(t *testing.T) {
	tests := []struct {
		ann  TypeAnnotation
		want string
	}{
		{TypeTuple, "Parameter 'p' has an unsupported type: tuple."},
		{TypeSet, "Parameter 'p' has an unsupported type: set."},
		{TypeComplex, "Parameter 'p' has an unsupported type: complex."},
		{TypeDateTime, "Parameter 'p' has an unsupported type: datetime."},
	}
	for _, tt := range tests {
		t.Run(tt.ann.String(), func(t *testing.T) {
			fd := NewFunction("f").Param("p", tt.ann).Build()
			report := Check(fd)
			assert.False(t, report.Compatible)
			assert.Equal(t, []string{tt.want}, report.Reasons)
		})
	}
}

func TestCheck_UnrecognizedAnnotation(t *testing.T) {
	fd := NewFunction("f").Param("cfg", Opaque("chan int")).Build()
	report := Check(fd)
	assert.False(t, report.Compatible)
	assert.Equal(t,
		[]string{"Parameter 'cfg' has an unrecognized type annotation: chan int."},
		report.Reasons)
}

func TestCheck_NamedTypeAccepted(t *testing.T) {
	// Strictness and fidelity diverge here: named types pass the gate but
	// still convert to "string".
	fd := NewFunction("f").Param("cfg", NamedType("main.Config")).Build()
	report := Check(fd, WithSchema())
	require.True(t, report.Compatible)
	typ, ok := report.Schema.Parameters.Property("cfg")
	require.True(t, ok)
	assert.Equal(t, "string", typ)
}

func TestCheck_VariadicSingleReason(t *testing.T) {
	fd := NewFunction("f").
		Param("args", TypeString, AsVariadic()).
		Param("kwargs", TypeObject, AsVariadicKeyword()).
		Build()

	report := Check(fd)
	assert.False(t, report.Compatible)
	assert.Equal(t,
		[]string{"Function uses variadic positional or keyword arguments, which are not supported."},
		report.Reasons,
		"one reason regardless of how many variadic parameters there are")
}

func TestCheck_InteractiveSource(t *testing.T) {
	fd := NewFunction("ask_name").
		Param("greeting", TypeString).
		Source(`name = input("Your name: ")`).
		Build()

	report := Check(fd)
	assert.False(t, report.Compatible)
	assert.Equal(t,
		[]string{"Function reads interactive input, which requires user interaction."},
		report.Reasons)
}

func TestCheck_InteractiveMarkersConfigurable(t *testing.T) {
	fd := NewFunction("f").
		Param("s", TypeString).
		Source("reply := promptUser(s)").
		Build()

	assert.True(t, Check(fd).Compatible, "default markers do not match promptUser")

	report := Check(fd, WithInteractiveMarkers("promptUser("))
	assert.False(t, report.Compatible)
}

func TestCheck_SourceWithoutMarkersPasses(t *testing.T) {
	fd := NewFunction("f").
		Param("s", TypeString).
		Source("return strings.ToUpper(s)").
		Build()
	assert.True(t, Check(fd).Compatible)
}

func TestCheck_ReturnTypes(t *testing.T) {
	tests := []struct {
		name string
		ret  TypeAnnotation
		ok   bool
		want string
	}{
		{"no annotation", Untyped, true, ""},
		{"primitive", TypeNumber, true, ""},
		{"named type", NamedType("main.Report"), true, ""},
		{"rejected", TypeTuple, false, "Return type 'tuple' is unsupported."},
		{"opaque", Opaque("(int, string)"), false, "Return type '(int, string)' is unsupported."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fd := NewFunction("f").Param("a", TypeString).Returns(tt.ret).Build()
			report := Check(fd)
			if tt.ok {
				assert.True(t, report.Compatible)
			} else {
				assert.False(t, report.Compatible)
				assert.Equal(t, []string{tt.want}, report.Reasons)
			}
		})
	}
}

func TestCheck_AccumulatesAllReasons(t *testing.T) {
	fd := NewFunction("messy").
		Param("x", Untyped).
		Param("when", TypeDateTime).
		Param("rest", TypeString, AsVariadic()).
		Source(`name = input("Name: ")`).
		Returns(TypeTuple).
		Build()

	report := Check(fd)
	assert.False(t, report.Compatible)
	assert.Equal(t, []string{
		"Parameter 'x' is missing a type annotation.",
		"Parameter 'when' has an unsupported type: datetime.",
		"Function uses variadic positional or keyword arguments, which are not supported.",
		"Function reads interactive input, which requires user interaction.",
		"Return type 'tuple' is unsupported.",
	}, report.Reasons)
	assert.Equal(t,
		"Parameter 'x' is missing a type annotation.; "+
			"Parameter 'when' has an unsupported type: datetime.; "+
			"Function uses variadic positional or keyword arguments, which are not supported.; "+
			"Function reads interactive input, which requires user interaction.; "+
			"Return type 'tuple' is unsupported.",
		report.Reason())
}

func TestCheck_DeduplicatesReasons(t *testing.T) {
	fd := NewFunction("f").
		Param("a", TypeTuple).
		Param("a", TypeTuple).
		Build()
	report := Check(fd)
	assert.Equal(t, []string{"Parameter 'a' has an unsupported type: tuple."}, report.Reasons)
}

func TestCheck_NoSignature(t *testing.T) {
	report := Check(FunctionDescriptor{})
	assert.False(t, report.Compatible)
	assert.Equal(t, []string{"Could not retrieve the function signature."}, report.Reasons)
}

func TestCheck_Biconditional(t *testing.T) {
	descriptors := []FunctionDescriptor{
		{},
		NewFunction("ok").Param("a", TypeString).Build(),
		NewFunction("bad").Param("a", Untyped).Build(),
		NewFunction("variadic").Param("a", TypeString, AsVariadic()).Build(),
		NewFunction("interactive").Source("input(").Build(),
		NewFunction("noparams").Build(),
		NewFunction("ret").Returns(TypeSet).Build(),
	}
	for _, fd := range descriptors {
		report := Check(fd)
		assert.Equal(t, len(report.Reasons) == 0, report.Compatible,
			"descriptor %q", fd.Name)
	}
}

func TestCheck_Pure(t *testing.T) {
	fd := NewFunction("f").Param("x", Untyped).Param("y", TypeTuple).Build()
	first := Check(fd)
	second := Check(fd)
	assert.Equal(t, first, second)
}

func TestCheckFunc_NotAFunction(t *testing.T) {
	for _, v := range []any{42, "nope", struct{}{}, nil} {
		report := CheckFunc(v)
		assert.False(t, report.Compatible)
		assert.Equal(t, []string{"Provided value is not a function."}, report.Reasons)
	}
}

func TestCheckFunc_Compatible(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }
	report := CheckFunc(add, WithSchema())
	require.True(t, report.Compatible, "reasons: %v", report.Reasons)
	require.NotNil(t, report.Schema)
	assert.Equal(t, []string{"param0", "param1"}, report.Schema.Parameters.PropertyNames())
}

func TestCheckFunc_RejectsTimeParameter(t *testing.T) {
	report := CheckFunc(func(t time.Time) string { return "" })
	assert.False(t, report.Compatible)
	assert.Equal(t,
		[]string{"Parameter 'param0' has an unsupported type: datetime."},
		report.Reasons)
}
