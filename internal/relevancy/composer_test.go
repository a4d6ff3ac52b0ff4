package relevancy

import (
	"context"
	"strings"
	"testing"

	"github.com/relevia/relevia/internal/decode"
)

func TestReasonComposer_Compose(t *testing.T) {
	provider := &mockProvider{
		responses: []string{
			`{"reason": "The score is 0.67 because the pineapple statement is unrelated to laptop features."}`,
		},
	}
	composer := NewReasonComposer(provider)

	reasons := []string{"The statement about pineapples on pizza is completely irrelevant to the input."}
	reason, err := composer.Compose(context.Background(), 2.0/3.0, reasons, "What features does the new laptop have?")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(reason, "0.67") {
		t.Errorf("Expected composed reason to reference the score, got %q", reason)
	}

	// The prompt must carry the score, the reasons, and the input
	p := provider.prompts[0]
	if !strings.Contains(p, "0.67") {
		t.Error("Expected the prompt to carry the formatted score")
	}
	if !strings.Contains(p, reasons[0]) {
		t.Error("Expected the prompt to carry the irrelevant reasons")
	}
	if !strings.Contains(p, "What features does the new laptop have?") {
		t.Error("Expected the prompt to carry the input")
	}
}

func TestReasonComposer_EmptyReason(t *testing.T) {
	provider := &mockProvider{responses: []string{`{"reason": ""}`}}
	composer := NewReasonComposer(provider)

	_, err := composer.Compose(context.Background(), 1.0, nil, "input")
	if err == nil {
		t.Fatal("Expected error for empty reason field")
	}
	if !decode.IsMalformed(err) {
		t.Errorf("Expected malformed-response error, got %v", err)
	}
}

func TestReasonComposer_MalformedResponse(t *testing.T) {
	provider := &mockProvider{responses: []string{"plain text, no JSON"}}
	composer := NewReasonComposer(provider)

	_, err := composer.Compose(context.Background(), 0.5, nil, "input")
	if err == nil {
		t.Fatal("Expected error for malformed judge response")
	}
	if !decode.IsMalformed(err) {
		t.Errorf("Expected malformed-response error, got %v", err)
	}
}
