// Package relevancy implements the answer relevancy metric: a four-stage
// pipeline that decomposes an answer into atomic statements, judges each
// statement's relevance to the input, aggregates the verdicts into a
// score in [0,1], and composes a human-readable reason for that score.
package relevancy

import (
	"context"
	"fmt"

	"github.com/relevia/relevia/internal/decode"
	"github.com/relevia/relevia/internal/judge"
	"github.com/relevia/relevia/internal/model"
	"github.com/relevia/relevia/internal/prompt"
)

// StatementExtractor turns answer text into an ordered list of atomic
// statements via one judge call
type StatementExtractor struct {
	provider judge.Provider
}

// NewStatementExtractor creates a new statement extractor
func NewStatementExtractor(provider judge.Provider) *StatementExtractor {
	return &StatementExtractor{provider: provider}
}

type statementsResponse struct {
	Statements []string `json:"statements"`
}

// Extract decomposes the actual output into statements. Order follows the
// source text but carries no meaning downstream.
func (e *StatementExtractor) Extract(ctx context.Context, actualOutput string) ([]model.Statement, error) {
	resp, err := e.provider.Complete(ctx, judge.CompletionRequest{
		Prompt: prompt.ForStatements(actualOutput),
	})
	if err != nil {
		return nil, fmt.Errorf("extract statements: %w", err)
	}

	var decoded statementsResponse
	if err := decode.Unmarshal(resp.Text, &decoded); err != nil {
		return nil, fmt.Errorf("extract statements: %w", err)
	}

	statements := make([]model.Statement, 0, len(decoded.Statements))
	for _, text := range decoded.Statements {
		statements = append(statements, model.Statement{Text: text})
	}
	return statements, nil
}
