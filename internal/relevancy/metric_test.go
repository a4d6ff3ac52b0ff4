package relevancy

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/relevia/relevia/internal/model"
)

func TestMetric_Evaluate_MixedAnswer(t *testing.T) {
	provider := &mockProvider{
		responses: []string{
			`{"statements": [
				"The laptop has a Retina display.",
				"It has great battery life.",
				"Pineapples taste great on pizza."
			]}`,
			`{"verdicts": [
				{"verdict": "yes"},
				{"verdict": "yes"},
				{"verdict": "no", "reason": "The pineapple statement is unrelated to laptop features."}
			]}`,
			`{"reason": "The score is 0.67 because the pineapple statement is unrelated to laptop features."}`,
		},
	}
	metric := NewMetric(provider, 0.5)

	result, err := metric.Evaluate(context.Background(), model.EvalCase{
		Input:        "What features does the new laptop have?",
		ActualOutput: "The laptop has a Retina display. It also has great battery life. Pineapples taste great on pizza.",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Statements) != 3 {
		t.Errorf("Expected 3 statements, got %d", len(result.Statements))
	}
	if len(result.Verdicts) != 3 {
		t.Errorf("Expected 3 verdicts, got %d", len(result.Verdicts))
	}
	if math.Abs(result.Score-2.0/3.0) > 1e-9 {
		t.Errorf("Expected score 2/3, got %v", result.Score)
	}
	if !result.Passed {
		t.Error("Expected score 0.67 to pass threshold 0.5")
	}
	if !strings.Contains(result.Reason, "pineapple") {
		t.Errorf("Expected reason to mention the irrelevant statement, got %q", result.Reason)
	}
	if len(result.Irrelevant) != 1 {
		t.Errorf("Expected 1 irrelevant reason, got %d", len(result.Irrelevant))
	}

	// Three judge calls, strictly in pipeline order
	if provider.calls != 3 {
		t.Errorf("Expected 3 judge calls, got %d", provider.calls)
	}
}

func TestMetric_Evaluate_FullyRelevantAnswer(t *testing.T) {
	provider := &mockProvider{
		responses: []string{
			`{"statements": ["The laptop has 12 hours of battery life."]}`,
			`{"verdicts": [{"verdict": "yes"}]}`,
			`{"reason": "The score is 1.00 because the answer addresses the question directly. Great job!"}`,
		},
	}
	metric := NewMetric(provider, 0.5)

	result, err := metric.Evaluate(context.Background(), model.EvalCase{
		Input:        "What features does the new laptop have?",
		ActualOutput: "The laptop has 12 hours of battery life.",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Score != 1.0 {
		t.Errorf("Expected score 1.0, got %v", result.Score)
	}
	if !result.Passed {
		t.Error("Expected result to pass")
	}
	if len(result.Irrelevant) != 0 {
		t.Errorf("Expected no irrelevant reasons, got %v", result.Irrelevant)
	}

	// Composer prompt must carry an empty reasons list, not a fabricated one
	composerPrompt := provider.prompts[2]
	if !strings.Contains(composerPrompt, "[]") {
		t.Error("Expected composer prompt to carry an empty reasons list")
	}
}

func TestMetric_Evaluate_VerdictCountMismatch(t *testing.T) {
	// 4 statements, 3 verdicts: the evaluation must fail, not proceed
	// with a partial score
	provider := &mockProvider{
		responses: []string{
			`{"statements": ["a", "b", "c", "d"]}`,
			`{"verdicts": [{"verdict": "yes"}, {"verdict": "yes"}, {"verdict": "no", "reason": "r"}]}`,
		},
	}
	metric := NewMetric(provider, 0.5)

	_, err := metric.Evaluate(context.Background(), model.EvalCase{
		Input:        "input",
		ActualOutput: "answer",
	})
	if err == nil {
		t.Fatal("Expected cardinality-mismatch failure")
	}
	if !errors.Is(err, ErrVerdictCount) {
		t.Errorf("Expected ErrVerdictCount, got %v", err)
	}

	// The composer must never run after a classifier failure
	if provider.calls != 2 {
		t.Errorf("Expected 2 judge calls, got %d", provider.calls)
	}
}

func TestMetric_Evaluate_NoStatements(t *testing.T) {
	provider := &mockProvider{
		responses: []string{
			`{"statements": []}`,
			`{"reason": "The score is 1.00 because nothing irrelevant was stated."}`,
		},
	}
	metric := NewMetric(provider, 0.5)

	result, err := metric.Evaluate(context.Background(), model.EvalCase{
		Input:        "input",
		ActualOutput: "Hmm.",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Score != 1.0 {
		t.Errorf("Expected vacuous score 1.0, got %v", result.Score)
	}

	// Classifier short-circuits on zero statements: extract + compose only
	if provider.calls != 2 {
		t.Errorf("Expected 2 judge calls, got %d", provider.calls)
	}
}

func TestMetric_Evaluate_PerCaseThreshold(t *testing.T) {
	provider := &mockProvider{
		responses: []string{
			`{"statements": ["a", "b"]}`,
			`{"verdicts": [{"verdict": "yes"}, {"verdict": "no", "reason": "r"}]}`,
			`{"reason": "The score is 0.50 because half the answer is off topic."}`,
		},
	}
	metric := NewMetric(provider, 0.5)

	strict := 0.9
	result, err := metric.Evaluate(context.Background(), model.EvalCase{
		Input:        "input",
		ActualOutput: "answer",
		Threshold:    &strict,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Threshold != 0.9 {
		t.Errorf("Expected per-case threshold 0.9, got %v", result.Threshold)
	}
	if result.Passed {
		t.Error("Expected score 0.5 to fail threshold 0.9")
	}
}

func TestMetric_Evaluate_EmptyInputs(t *testing.T) {
	metric := NewMetric(&mockProvider{}, 0.5)

	if _, err := metric.Evaluate(context.Background(), model.EvalCase{ActualOutput: "x"}); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := metric.Evaluate(context.Background(), model.EvalCase{Input: "x"}); err == nil {
		t.Error("Expected error for empty actual output")
	}
}
