package relevancy

import (
	"context"
	"fmt"

	"github.com/relevia/relevia/internal/judge"
)

// mockProvider returns canned responses in call order
type mockProvider struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (m *mockProvider) Name() string {
	return "mock"
}

func (m *mockProvider) IsAvailable(ctx context.Context) bool {
	return true
}

func (m *mockProvider) Complete(ctx context.Context, req judge.CompletionRequest) (*judge.CompletionResponse, error) {
	m.prompts = append(m.prompts, req.Prompt)
	if m.err != nil {
		return nil, m.err
	}
	if m.calls >= len(m.responses) {
		return nil, fmt.Errorf("mock provider: no response for call %d", m.calls)
	}
	text := m.responses[m.calls]
	m.calls++
	return &judge.CompletionResponse{Text: text, Model: "mock-model"}, nil
}
