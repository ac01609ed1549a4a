package funcschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ArgumentValidator checks incoming tool-call argument JSON against the
// parameter schema of a converted function. The same schema shown to the
// model validates what the model sends back.
type ArgumentValidator struct {
	schema *jsonschema.Schema
}

// CompileArguments compiles the schema's parameters object into a reusable
// validator. Compilation happens once per function, at registration time.
func CompileArguments(s Schema) (*ArgumentValidator, error) {
	raw, err := json.Marshal(s.Parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal parameters schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode parameters schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("arguments.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("arguments.json")
	if err != nil {
		return nil, fmt.Errorf("compile parameters schema: %w", err)
	}
	return &ArgumentValidator{schema: compiled}, nil
}

// Validate parses argsJSON and validates it against the parameters schema.
// Failures come back as ArgumentError values carrying a message fit to hand
// to the model for self-correction.
func (v *ArgumentValidator) Validate(argsJSON []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(argsJSON))
	if err != nil {
		return wrapJSONParseError(err)
	}
	if err := v.schema.Validate(inst); err != nil {
		return &ArgumentError{Reason: err.Error(), Err: ErrValidation}
	}
	return nil
}
