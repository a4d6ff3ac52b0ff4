package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/relevia/relevia/internal/dataset"
	"github.com/relevia/relevia/internal/model"
	"github.com/relevia/relevia/internal/relevancy"
	"github.com/relevia/relevia/internal/report"
	"github.com/relevia/relevia/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// judgeProvider, judgeModel, noCache, noFooter are defined in eval.go
	// and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate multiple cases from a file in parallel",
	Long: `Batch evaluates a set of cases concurrently:
- Read cases from a YAML or JSON file
- Evaluate cases in parallel with configurable worker count
- A failed case is reported but never aborts its siblings
- Generate a combined JSON and Markdown report

Example:
  relevia batch cases.yaml
  relevia batch cases.yaml --concurrency 8 --output-dir ./reports
  relevia batch cases.json --judge ollama --judge-model llama3.1`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent case evaluations")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./relevia-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch run")

	// Scoring flags
	batchCmd.Flags().Float64Var(&evalThreshold, "threshold", 0.5, "minimum score to pass (per-case thresholds override)")

	// Judge flags
	batchCmd.Flags().StringVar(&judgeProvider, "judge", "openai", "judge provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&judgeModel, "judge-model", "", "judge model name (provider default if empty)")
	batchCmd.Flags().Float64Var(&rateLimit, "rate", 2, "judge calls per second (0 disables throttling)")
	batchCmd.Flags().IntVar(&maxTokens, "max-tokens", 1000, "max tokens per judge response")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable judge response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Relevia Batch Evaluation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Cases file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.Judge.Provider = judgeProvider
	cfg.Judge.Model = judgeModel
	cfg.Judge.MaxTokens = maxTokens
	cfg.Judge.RateLimit = rateLimit
	cfg.Scoring.Threshold = evalThreshold
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	fmt.Fprintf(os.Stderr, "  Judge:        %s", cfg.Judge.Provider)
	if cfg.Judge.Model != "" {
		fmt.Fprintf(os.Stderr, "/%s", cfg.Judge.Model)
	}
	fmt.Fprintf(os.Stderr, "\n\n")

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	// Load cases
	fmt.Fprintf(os.Stderr, "⚙️  Reading cases from file...\n")
	cases, err := dataset.Load(file)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d cases\n", len(cases))
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	metric := relevancy.NewMetric(provider, cfg.Scoring.Threshold)
	processor := worker.NewBatchProcessor(metric, cfg.Concurrency.Workers)

	fmt.Fprintf(os.Stderr, "⚙️  Evaluating cases with %d workers...\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "\n")

	startedAt := time.Now().UTC()
	evalResults := processor.Process(ctx, cases)

	// Collect per-case outcomes; a failed evaluation becomes an errored
	// result rather than aborting the run
	results := make([]model.Result, 0, len(evalResults))
	for _, er := range evalResults {
		if er.Error != nil {
			results = append(results, model.Result{
				Case:        er.Case,
				Error:       er.Error.Error(),
				EvaluatedAt: time.Now().UTC(),
			})
			continue
		}
		results = append(results, *er.Result)
	}

	rep := report.New(Version, report.JudgeMeta{
		Provider: cfg.Judge.Provider,
		Model:    cfg.Judge.Model,
	}, startedAt, results)

	jsonPath := filepath.Join(outputDir, "report.json")
	mdPath := filepath.Join(outputDir, "report.md")
	if err := rep.RenderJSON(jsonPath); err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}
	if err := rep.RenderMarkdown(mdPath, cfg.Output.IncludeFooter); err != nil {
		return fmt.Errorf("render Markdown: %w", err)
	}

	rep.RenderSummary(os.Stderr)

	// Summary
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d cases\n", rep.Summary.Cases)
	fmt.Fprintf(os.Stderr, "  Passed:    %d\n", rep.Summary.Passed)
	fmt.Fprintf(os.Stderr, "  Failed:    %d\n", rep.Summary.Failed)
	fmt.Fprintf(os.Stderr, "  Errored:   %d\n", rep.Summary.Errored)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if rep.Summary.Failed > 0 || rep.Summary.Errored > 0 {
		os.Exit(1)
	}
	return nil
}
