// Package report aggregates per-case results into a run report and
// renders it as JSON or Markdown
package report

import (
	"time"

	"github.com/relevia/relevia/internal/model"
)

// Report represents one complete evaluation run
type Report struct {
	Tool      string         `json:"tool"`    // "relevia"
	Version   string         `json:"version"` // Tool version
	Metric    string         `json:"metric"`  // "answer_relevancy"
	Judge     JudgeMeta      `json:"judge"`
	StartedAt time.Time      `json:"started_at"`
	Duration  int64          `json:"duration_ms"` // Wall time of the run, milliseconds
	Summary   Summary        `json:"summary"`
	Results   []model.Result `json:"results"`
}

// JudgeMeta records which judge produced the verdicts
type JudgeMeta struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// Summary aggregates per-case outcomes
type Summary struct {
	Cases     int     `json:"cases"`
	Passed    int     `json:"passed"`
	Failed    int     `json:"failed"`  // Evaluated but below threshold
	Errored   int     `json:"errored"` // Evaluation failed outright
	MeanScore float64 `json:"mean_score"` // Over evaluated cases only
}

// New builds a report from per-case results
func New(version string, judge JudgeMeta, startedAt time.Time, results []model.Result) *Report {
	summary := Summary{Cases: len(results)}

	scored := 0
	var total float64
	for _, r := range results {
		if r.Error != "" {
			summary.Errored++
			continue
		}
		scored++
		total += r.Score
		if r.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	if scored > 0 {
		summary.MeanScore = total / float64(scored)
	}

	return &Report{
		Tool:      "relevia",
		Version:   version,
		Metric:    "answer_relevancy",
		Judge:     judge,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt).Milliseconds(),
		Summary:   summary,
		Results:   results,
	}
}
