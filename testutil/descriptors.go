// Package testutil provides canned descriptors and a mock chat-completion
// client for funcschema tests and examples.
package testutil

import "github.com/funcschema/funcschema"

// AddNumbers is a fully compatible two-parameter descriptor.
func AddNumbers() funcschema.FunctionDescriptor {
	return funcschema.NewFunction("add_numbers").
		Doc("Adds two numbers.").
		Param("a", funcschema.TypeNumber).
		Param("b", funcschema.TypeNumber).
		Returns(funcschema.TypeNumber).
		Build()
}

// GetWeather is a compatible descriptor with an optional parameter.
func GetWeather() funcschema.FunctionDescriptor {
	return funcschema.NewFunction("get_weather").
		Doc("Gets the current weather for a location.").
		Param("location", funcschema.TypeString).
		Param("unit", funcschema.TypeString, funcschema.WithDefault()).
		Returns(funcschema.TypeObject).
		Build()
}

// Interactive is well-typed but reads user input in its body.
func Interactive() funcschema.FunctionDescriptor {
	return funcschema.NewFunction("ask_name").
		Doc("Prompts the user for their name.").
		Param("greeting", funcschema.TypeString).
		Source(`name = input("Your name: ")`).
		Build()
}

// VariadicJoin uses a variadic-positional parameter.
func VariadicJoin() funcschema.FunctionDescriptor {
	return funcschema.NewFunction("join_words").
		Doc("Joins words with spaces.").
		Param("words", funcschema.TypeString, funcschema.AsVariadic()).
		Build()
}

// UntypedEcho has a parameter without an annotation.
func UntypedEcho() funcschema.FunctionDescriptor {
	return funcschema.NewFunction("echo").
		Param("x", funcschema.Untyped).
		Build()
}
