package testutil

import (
	"context"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/funcschema/funcschema"
)

// MockChatCompleter is a configurable ChatCompleter implementation for
// tests. It records every request and returns the canned response or error.
type MockChatCompleter struct {
	mu       sync.Mutex
	Response string
	Err      error
	Requests []openai.ChatCompletionRequest
}

// CreateChatCompletion records the request and replies with Response.
func (m *MockChatCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.Err != nil {
		return openai.ChatCompletionResponse{}, m.Err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: m.Response,
			}},
		},
	}, nil
}

// Ensure MockChatCompleter satisfies the analyzer's client contract.
var _ funcschema.ChatCompleter = (*MockChatCompleter)(nil)

// LastRequest returns the most recent recorded request, if any.
func (m *MockChatCompleter) LastRequest() (openai.ChatCompletionRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return openai.ChatCompletionRequest{}, false
	}
	return m.Requests[len(m.Requests)-1], true
}
