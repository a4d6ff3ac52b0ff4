package relevancy

import "github.com/relevia/relevia/internal/model"

// Scorer reduces a verdict list to the relevancy score. Pure arithmetic,
// no judge call.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns the fraction of statements not judged irrelevant.
// An empty verdict list scores 1.0: an answer with no statements made
// no irrelevant ones.
func (s *Scorer) Score(verdicts []model.Verdict) float64 {
	total := len(verdicts)
	if total == 0 {
		return 1.0
	}

	relevant := 0
	for _, v := range verdicts {
		if !v.Irrelevant() {
			relevant++
		}
	}

	return float64(relevant) / float64(total)
}
