package funcschema

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAdd(a, b float64) float64 { return a + b }

func TestDescribe_NamedFunction(t *testing.T) {
	fd, err := Describe(sampleAdd)
	require.NoError(t, err)
	assert.Equal(t, "sampleAdd", fd.Name)
	require.Len(t, fd.Params, 2)
	assert.Equal(t, Param{Name: "param0", Type: TypeNumber}, fd.Params[0])
	assert.Equal(t, Param{Name: "param1", Type: TypeNumber}, fd.Params[1])
	assert.Equal(t, TypeNumber, fd.Return)
}

func TestDescribe_Options(t *testing.T) {
	fd, err := Describe(sampleAdd,
		WithName("add_numbers"),
		WithDoc("Adds two numbers."),
		WithParamNames("a", "b"),
		WithSource("return a + b"),
	)
	require.NoError(t, err)
	assert.Equal(t, "add_numbers", fd.Name)
	assert.Equal(t, "Adds two numbers.", fd.Doc)
	assert.Equal(t, "a", fd.Params[0].Name)
	assert.Equal(t, "b", fd.Params[1].Name)
	assert.Equal(t, "return a + b", fd.Source)
}

func TestDescribe_PartialParamNames(t *testing.T) {
	fd, err := Describe(func(a, b, c string) {}, WithParamNames("first"))
	require.NoError(t, err)
	assert.Equal(t, "first", fd.Params[0].Name)
	assert.Equal(t, "param1", fd.Params[1].Name)
	assert.Equal(t, "param2", fd.Params[2].Name)
}

func TestDescribe_SkipsLeadingContext(t *testing.T) {
	fd, err := Describe(func(ctx context.Context, q string) error { return nil })
	require.NoError(t, err)
	require.Len(t, fd.Params, 1)
	assert.Equal(t, TypeString, fd.Params[0].Type)
	assert.Equal(t, "param0", fd.Params[0].Name, "context does not consume a name slot")
	assert.True(t, fd.Return.IsZero(), "lone error result means no return annotation")
}

func TestDescribe_Variadic(t *testing.T) {
	fd, err := Describe(func(sep string, words ...string) string { return "" })
	require.NoError(t, err)
	require.Len(t, fd.Params, 2)
	assert.Equal(t, KindNormal, fd.Params[0].Kind)
	assert.Equal(t, KindVariadic, fd.Params[1].Kind)
	assert.Equal(t, TypeString, fd.Params[1].Type, "element type, not the slice")
}

func TestDescribe_TypeMapping(t *testing.T) {
	type config struct{ Debug bool }

	tests := []struct {
		name string
		fn   any
		want TypeAnnotation
	}{
		{"string", func(string) {}, TypeString},
		{"bool", func(bool) {}, TypeBoolean},
		{"int", func(int) {}, TypeInteger},
		{"uint32", func(uint32) {}, TypeInteger},
		{"float32", func(float32) {}, TypeNumber},
		{"complex128", func(complex128) {}, TypeComplex},
		{"slice", func([]int) {}, TypeArray},
		{"array", func([3]string) {}, TypeArray},
		{"map", func(map[string]int) {}, TypeObject},
		{"pointer deref", func(*string) {}, TypeString},
		{"time", func(time.Time) {}, TypeDateTime},
		{"time pointer", func(*time.Time) {}, TypeDateTime},
		{"empty interface", func(any) {}, Untyped},
		{"named struct", func(config) {}, NamedType("funcschema.config")},
		{"anonymous struct", func(struct{ N int }) {}, TypeObject},
		{"channel", func(chan int) {}, Opaque("chan int")},
		{"function", func(func()) {}, Opaque("func()")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fd, err := Describe(tt.fn)
			require.NoError(t, err)
			require.Len(t, fd.Params, 1)
			assert.Equal(t, tt.want, fd.Params[0].Type)
		})
	}
}

func TestDescribe_ReturnShapes(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want TypeAnnotation
	}{
		{"none", func() {}, Untyped},
		{"single", func() int { return 0 }, TypeInteger},
		{"value and error", func() (string, error) { return "", nil }, TypeString},
		{"error only", func() error { return nil }, Untyped},
		{"two values", func() (int, string) { return 0, "" }, Opaque("(int, string)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fd, err := Describe(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fd.Return)
		})
	}
}

func TestDescribe_NotAFunction(t *testing.T) {
	for _, v := range []any{nil, 42, "f", struct{}{}} {
		_, err := Describe(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSignatureUnavailable)
	}
}

func TestDescribe_NoDefaults(t *testing.T) {
	fd, err := Describe(func(a string, b int) {})
	require.NoError(t, err)
	for _, p := range fd.Params {
		assert.False(t, p.HasDefault)
	}
}
