package model

import "time"

// EvalCase is one (input, actual output) pair to evaluate
type EvalCase struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`                   // Optional case identifier
	Input        string   `json:"input" yaml:"input"`                                     // What the user asked
	ActualOutput string   `json:"actual_output" yaml:"actual_output"`                     // What the model answered
	Threshold    *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`         // Per-case override of the pass threshold
	ExpectedTags []string `json:"expected_tags,omitempty" yaml:"expected_tags,omitempty"` // Free-form tags carried through to the report
}

// Result is the complete outcome of evaluating one case
type Result struct {
	Case        EvalCase    `json:"case"`
	Score       float64     `json:"score"`                 // Fraction of statements not judged irrelevant, in [0,1]
	Threshold   float64     `json:"threshold"`             // Threshold the score was compared against
	Passed      bool        `json:"passed"`                // Score >= Threshold
	Reason      string      `json:"reason"`                // Judge-composed explanation of the score
	Statements  []Statement `json:"statements"`            // Statements extracted from the actual output
	Verdicts    []Verdict   `json:"verdicts"`              // One verdict per statement, same order
	Irrelevant  []string    `json:"irrelevant,omitempty"`  // Reasons attached to irrelevant verdicts
	EvaluatedAt time.Time   `json:"evaluated_at"`
	Error       string      `json:"error,omitempty"` // Set when the evaluation failed outright
}
