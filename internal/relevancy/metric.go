package relevancy

import (
	"context"
	"fmt"
	"time"

	"github.com/relevia/relevia/internal/judge"
	"github.com/relevia/relevia/internal/model"
)

// Metric orchestrates the four pipeline stages for one evaluation.
// Stages hold no mutable state, so one Metric may evaluate distinct
// cases concurrently.
type Metric struct {
	extractor  *StatementExtractor
	classifier *VerdictClassifier
	scorer     *Scorer
	composer   *ReasonComposer
	threshold  float64
}

// NewMetric creates a metric backed by the given judge provider
func NewMetric(provider judge.Provider, threshold float64) *Metric {
	return &Metric{
		extractor:  NewStatementExtractor(provider),
		classifier: NewVerdictClassifier(provider),
		scorer:     NewScorer(),
		composer:   NewReasonComposer(provider),
		threshold:  threshold,
	}
}

// Evaluate runs the full pipeline for one case. The stages run strictly
// in order: each judge prompt is built from the complete output of the
// previous stage. There is no partial result: the evaluation either
// fully succeeds or fails outright.
func (m *Metric) Evaluate(ctx context.Context, ec model.EvalCase) (*model.Result, error) {
	if ec.Input == "" {
		return nil, fmt.Errorf("evaluate: input must not be empty")
	}
	if ec.ActualOutput == "" {
		return nil, fmt.Errorf("evaluate: actual output must not be empty")
	}

	// 1. Decompose the answer into atomic statements
	statements, err := m.extractor.Extract(ctx, ec.ActualOutput)
	if err != nil {
		return nil, err
	}

	// 2. Judge each statement against the input
	verdicts, err := m.classifier.Classify(ctx, ec.Input, statements)
	if err != nil {
		return nil, err
	}

	// 3. Aggregate verdicts into the score
	score := m.scorer.Score(verdicts)
	reasons := IrrelevantReasons(verdicts)

	// 4. Compose the explanation
	reason, err := m.composer.Compose(ctx, score, reasons, ec.Input)
	if err != nil {
		return nil, err
	}

	threshold := m.threshold
	if ec.Threshold != nil {
		threshold = *ec.Threshold
	}

	return &model.Result{
		Case:        ec,
		Score:       score,
		Threshold:   threshold,
		Passed:      score >= threshold,
		Reason:      reason,
		Statements:  statements,
		Verdicts:    verdicts,
		Irrelevant:  reasons,
		EvaluatedAt: time.Now().UTC(),
	}, nil
}
