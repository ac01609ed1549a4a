// Package funcschema converts function signatures into JSON-schema-shaped
// call descriptors for LLM tool calling, and gates functions behind a strict
// compatibility check before they are exposed to automated invocation.
//
// # Overview
//
// Tool-calling APIs consume a schema: name, description, typed parameters.
// This package produces that schema from a FunctionDescriptor: an explicit,
// ordered description of a callable (parameter names, type annotations,
// default-presence, variadic kind, optional source text) built either with
// NewFunction (builder) or reflected from a live Go function with Describe.
//
// Two operations share the same closed type mapping but apply it with
// opposite temperaments:
//
//   - Convert is permissive: best-effort schema for already-trusted
//     functions. Unannotated or unmapped parameter types fall back to
//     "string"; it fails only when the signature itself is unavailable.
//   - Check is strict: a pre-registration gate. It walks a fixed ordered
//     checklist (annotations, reject-listed types, variadics, interactive
//     input, return type) and accumulates every disqualifying reason into a
//     Report instead of stopping at the first.
//
// # Key concepts
//
//   - Compatibility failure is a value, not an error: Report.Compatible is
//     false iff Report.Reasons is non-empty. Only an uninspectable
//     signature aborts with SignatureError.
//   - Registry refuses incompatible functions at Register time, then
//     validates every incoming argument payload against the same schema it
//     exported to the model.
//   - Interactive-input detection is a textual substring heuristic over the
//     provided source text, not control-flow analysis.
//
// # Example
//
//	fd := funcschema.NewFunction("add_numbers").
//	    Doc("Adds two numbers.").
//	    Param("a", funcschema.TypeNumber).
//	    Param("b", funcschema.TypeNumber).
//	    Build()
//	report := funcschema.Check(fd, funcschema.WithSchema())
//	if report.Compatible {
//	    tool := funcschema.OpenAITool(*report.Schema)
//	    _ = tool
//	}
//
// See FunctionDescriptor, Convert, Check for the core contract, and
// Registry for the gated execution pipeline.
package funcschema
