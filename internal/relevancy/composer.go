package relevancy

import (
	"context"
	"fmt"

	"github.com/relevia/relevia/internal/decode"
	"github.com/relevia/relevia/internal/judge"
	"github.com/relevia/relevia/internal/prompt"
)

// ReasonComposer turns the score and the irrelevant-statement reasons
// into one explanatory sentence via one judge call
type ReasonComposer struct {
	provider judge.Provider
}

// NewReasonComposer creates a new reason composer
func NewReasonComposer(provider judge.Provider) *ReasonComposer {
	return &ReasonComposer{provider: provider}
}

type reasonResponse struct {
	Reason string `json:"reason"`
}

// Compose explains the score in terms of the collected irrelevant
// reasons. When the reasons list is empty the judge is instructed to
// phrase the explanation positively.
func (c *ReasonComposer) Compose(ctx context.Context, score float64, irrelevantReasons []string, input string) (string, error) {
	resp, err := c.provider.Complete(ctx, judge.CompletionRequest{
		Prompt: prompt.ForReason(score, irrelevantReasons, input),
	})
	if err != nil {
		return "", fmt.Errorf("compose reason: %w", err)
	}

	var decoded reasonResponse
	if err := decode.Unmarshal(resp.Text, &decoded); err != nil {
		return "", fmt.Errorf("compose reason: %w", err)
	}

	if decoded.Reason == "" {
		return "", fmt.Errorf("compose reason: %w",
			&decode.MalformedError{Raw: resp.Text, Err: fmt.Errorf("empty reason field")})
	}

	return decoded.Reason, nil
}
