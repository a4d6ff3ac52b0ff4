package worker

import (
	"context"

	"github.com/relevia/relevia/internal/model"
)

// Evaluator defines the interface for evaluating a single case
type Evaluator interface {
	Evaluate(ctx context.Context, ec model.EvalCase) (*model.Result, error)
}

// EvalJob represents one case evaluation job
type EvalJob struct {
	Index     int // Position of the case in the input file
	Case      model.EvalCase
	Evaluator Evaluator
}

// Execute executes the evaluation job
func (j *EvalJob) Execute(ctx context.Context) Result {
	result, err := j.Evaluator.Evaluate(ctx, j.Case)
	if err != nil {
		return &EvalResult{
			Index: j.Index,
			Case:  j.Case,
			Error: err,
		}
	}
	return &EvalResult{
		Index:  j.Index,
		Case:   j.Case,
		Result: result,
	}
}

// EvalResult represents the result of one evaluation job
type EvalResult struct {
	Index  int
	Case   model.EvalCase
	Result *model.Result
	Error  error
}

// GetError returns the error from the evaluation
func (r *EvalResult) GetError() error {
	return r.Error
}

// BatchProcessor evaluates multiple cases concurrently. Safe because the
// metric stages are stateless; concurrent cases share only the judge
// client, which is the provider's concern.
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// Process evaluates all cases concurrently, returning results in the
// original case order. A failed case carries its error; it never aborts
// sibling cases.
func (b *BatchProcessor) Process(ctx context.Context, cases []model.EvalCase) []*EvalResult {
	if len(cases) == 0 {
		return []*EvalResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, ec := range cases {
		pool.Submit(&EvalJob{
			Index:     i,
			Case:      ec,
			Evaluator: b.evaluator,
		})
	}

	results := pool.Wait()

	// Workers finish out of order; restore input order by index
	ordered := make([]*EvalResult, len(cases))
	for _, result := range results {
		er := result.(*EvalResult)
		ordered[er.Index] = er
	}

	return ordered
}
