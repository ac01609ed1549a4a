package funcschema

import (
	"bytes"
	"encoding/json"
)

// KindFunction is the only schema kind this package produces.
const KindFunction = "function"

// Schema is a JSON-schema-shaped call descriptor for one function, suitable
// as the function entry of a chat-completion tool definition.
//
// Its JSON form is the tool-calling wire shape:
//
//	{"type":"function","function":{"name":...,"description":...,"parameters":{...}}}
type Schema struct {
	// Kind is always KindFunction; Convert sets it.
	Kind        string
	Name        string
	Description string
	Parameters  ParameterSchema
}

// ParameterSchema describes the function's arguments as a JSON Schema
// object. Properties preserves the descriptor's parameter order, and
// Required is an order-preserving subset of the property names.
type ParameterSchema struct {
	// Type is always "object".
	Type       string
	Properties []Property
	Required   []string
}

// Property is one named parameter and its schema type.
type Property struct {
	Name string
	Type string
}

// Property returns the schema type for the named parameter.
func (p ParameterSchema) Property(name string) (string, bool) {
	for _, prop := range p.Properties {
		if prop.Name == name {
			return prop.Type, true
		}
	}
	return "", false
}

// PropertyNames returns the property names in schema order.
func (p ParameterSchema) PropertyNames() []string {
	names := make([]string, len(p.Properties))
	for i, prop := range p.Properties {
		names[i] = prop.Name
	}
	return names
}

// MarshalJSON emits the parameters object with properties in declaration
// order. encoding/json sorts map keys, so the object is written by hand.
func (p ParameterSchema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	typ := p.Type
	if typ == "" {
		typ = "object"
	}
	if err := writeJSONString(&buf, typ); err != nil {
		return nil, err
	}
	buf.WriteString(`,"properties":{`)
	for i, prop := range p.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, prop.Name); err != nil {
			return nil, err
		}
		buf.WriteString(`:{"type":`)
		if err := writeJSONString(&buf, prop.Type); err != nil {
			return nil, err
		}
		buf.WriteByte('}')
	}
	buf.WriteString(`},"required":`)
	required := p.Required
	if required == nil {
		required = []string{}
	}
	req, err := json.Marshal(required)
	if err != nil {
		return nil, err
	}
	buf.Write(req)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the ordered property list from the JSON object,
// preserving the order properties appear in the document.
func (p *ParameterSchema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		switch key {
		case "type":
			if err := dec.Decode(&p.Type); err != nil {
				return err
			}
		case "required":
			if err := dec.Decode(&p.Required); err != nil {
				return err
			}
		case "properties":
			props, err := decodeOrderedProperties(dec)
			if err != nil {
				return err
			}
			p.Properties = props
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeOrderedProperties(dec *json.Decoder) ([]Property, error) {
	// Opening brace of the properties object.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var props []Property
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := keyTok.(string)
		var body struct {
			Type string `json:"type"`
		}
		if err := dec.Decode(&body); err != nil {
			return nil, err
		}
		props = append(props, Property{Name: name, Type: body.Type})
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return props, nil
}

// MarshalJSON emits the chat-completion tool wire form.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	kind := s.Kind
	if kind == "" {
		kind = KindFunction
	}
	if err := writeJSONString(&buf, kind); err != nil {
		return nil, err
	}
	buf.WriteString(`,"function":{"name":`)
	if err := writeJSONString(&buf, s.Name); err != nil {
		return nil, err
	}
	buf.WriteString(`,"description":`)
	if err := writeJSONString(&buf, s.Description); err != nil {
		return nil, err
	}
	buf.WriteString(`,"parameters":`)
	params, err := s.Parameters.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(params)
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the wire form produced by MarshalJSON.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type     string `json:"type"`
		Function struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			Parameters  ParameterSchema `json:"parameters"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Kind = wire.Type
	s.Name = wire.Function.Name
	s.Description = wire.Function.Description
	s.Parameters = wire.Function.Parameters
	return nil
}

func writeJSONString(buf *bytes.Buffer, v string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
