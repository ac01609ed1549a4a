package funcschema

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITool exports a converted schema as a go-openai tool definition for
// a chat-completion request.
func OpenAITool(s Schema) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        s.Name,
			Description: s.Description,
			Parameters:  s.Parameters,
		},
	}
}

// OpenAITools exports every registered schema, sorted by function name.
func (r *Registry) OpenAITools() []openai.Tool {
	schemas := r.Schemas()
	tools := make([]openai.Tool, len(schemas))
	for i, s := range schemas {
		tools[i] = OpenAITool(s)
	}
	return tools
}

// CallFromToolCall adapts a model-produced tool call into a registry Call.
func CallFromToolCall(tc openai.ToolCall) Call {
	return Call{
		ID:       tc.ID,
		Function: tc.Function.Name,
		Args:     json.RawMessage(tc.Function.Arguments),
	}
}
