package relevancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/relevia/relevia/internal/decode"
	"github.com/relevia/relevia/internal/judge"
	"github.com/relevia/relevia/internal/model"
	"github.com/relevia/relevia/internal/prompt"
)

// ErrVerdictCount reports that the judge returned a verdict list whose
// length differs from the statement list. This is a contract violation
// of the judge and fails the evaluation; it is never silently corrected.
var ErrVerdictCount = errors.New("verdict count does not match statement count")

// VerdictClassifier judges each statement's relevance to the input via
// one judge call carrying the full statement list
type VerdictClassifier struct {
	provider judge.Provider
}

// NewVerdictClassifier creates a new verdict classifier
func NewVerdictClassifier(provider judge.Provider) *VerdictClassifier {
	return &VerdictClassifier{provider: provider}
}

type verdictsResponse struct {
	Verdicts []model.Verdict `json:"verdicts"`
}

// Classify returns one verdict per statement, in statement order.
// An empty statement list short-circuits without a judge call.
func (c *VerdictClassifier) Classify(ctx context.Context, input string, statements []model.Statement) ([]model.Verdict, error) {
	if len(statements) == 0 {
		return []model.Verdict{}, nil
	}

	resp, err := c.provider.Complete(ctx, judge.CompletionRequest{
		Prompt: prompt.ForVerdicts(input, statements),
	})
	if err != nil {
		return nil, fmt.Errorf("classify statements: %w", err)
	}

	var decoded verdictsResponse
	if err := decode.Unmarshal(resp.Text, &decoded); err != nil {
		return nil, fmt.Errorf("classify statements: %w", err)
	}

	if len(decoded.Verdicts) != len(statements) {
		return nil, fmt.Errorf("classify statements: %w: %d verdicts for %d statements",
			ErrVerdictCount, len(decoded.Verdicts), len(statements))
	}

	verdicts := make([]model.Verdict, len(decoded.Verdicts))
	for i, v := range decoded.Verdicts {
		if !v.Label.Valid() {
			return nil, fmt.Errorf("classify statements: %w",
				&decode.MalformedError{Raw: resp.Text, Err: fmt.Errorf("unknown verdict label %q at index %d", v.Label, i)})
		}
		// Reasons are meaningful only for irrelevant verdicts; a sloppy
		// judge may attach them elsewhere, so drop those.
		if v.Label != model.VerdictNo {
			v.Reason = ""
		}
		verdicts[i] = v
	}

	return verdicts, nil
}

// IrrelevantReasons collects the reasons attached to irrelevant verdicts,
// in verdict order
func IrrelevantReasons(verdicts []model.Verdict) []string {
	var reasons []string
	for _, v := range verdicts {
		if v.Irrelevant() && v.Reason != "" {
			reasons = append(reasons, v.Reason)
		}
	}
	return reasons
}
