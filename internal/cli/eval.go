package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/relevia/relevia/internal/model"
	"github.com/relevia/relevia/internal/relevancy"
	"github.com/relevia/relevia/internal/report"
	"github.com/spf13/cobra"
)

var (
	evalInput     string
	evalAnswer    string
	evalThreshold float64
	judgeProvider string
	judgeModel    string
	outJSON       string
	outMD         string
	timeout       time.Duration
	noCache       bool
	noFooter      bool
	rateLimit     float64
	maxTokens     int
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the relevancy of a single answer",
	Long: `Eval measures how relevant an answer is to its input:
- Decompose the answer into atomic statements
- Judge each statement as relevant, irrelevant, or ambiguous
- Aggregate verdicts into a score in [0, 1]
- Compose a human-readable explanation

Example:
  relevia eval --input "What is the capital of France?" --answer "Paris is the capital of France."
  relevia eval --input "..." --answer "..." --json report.json --md report.md
  relevia eval --input "..." --answer "..." --judge anthropic --judge-model claude-sonnet-4-5`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	// Case flags
	evalCmd.Flags().StringVar(&evalInput, "input", "", "the input the answer responds to (required)")
	evalCmd.Flags().StringVar(&evalAnswer, "answer", "", "the answer under evaluation (required)")
	evalCmd.Flags().Float64Var(&evalThreshold, "threshold", 0.5, "minimum score to pass")

	// Judge flags
	evalCmd.Flags().StringVar(&judgeProvider, "judge", "openai", "judge provider (openai, anthropic, ollama)")
	evalCmd.Flags().StringVar(&judgeModel, "judge-model", "", "judge model name (provider default if empty)")
	evalCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall evaluation timeout")
	evalCmd.Flags().Float64Var(&rateLimit, "rate", 2, "judge calls per second (0 disables throttling)")
	evalCmd.Flags().IntVar(&maxTokens, "max-tokens", 1000, "max tokens per judge response")
	evalCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable judge response cache")

	// Output flags
	evalCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	evalCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	evalCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	if err := evalCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := evalCmd.MarkFlagRequired("answer"); err != nil {
		panic(err)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Judge.Provider = judgeProvider
	cfg.Judge.Model = judgeModel
	cfg.Judge.Timeout = int(timeout.Seconds())
	cfg.Judge.MaxTokens = maxTokens
	cfg.Judge.RateLimit = rateLimit
	cfg.Scoring.Threshold = evalThreshold
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if verbose {
		fmt.Fprintf(os.Stderr, "Judge: %s", cfg.Judge.Provider)
		if cfg.Judge.Model != "" {
			fmt.Fprintf(os.Stderr, "/%s", cfg.Judge.Model)
		}
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Threshold: %.2f\n", cfg.Scoring.Threshold)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	metric := relevancy.NewMetric(provider, cfg.Scoring.Threshold)

	ec := model.EvalCase{
		Input:        evalInput,
		ActualOutput: evalAnswer,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Evaluating answer relevancy...\n")
	}

	startedAt := time.Now().UTC()
	result, err := metric.Evaluate(ctx, ec)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d statements\n", len(result.Statements))
		fmt.Fprintf(os.Stderr, "✓ Collected %d verdicts (%d irrelevant)\n", len(result.Verdicts), len(result.Irrelevant))
		fmt.Fprintf(os.Stderr, "✓ Score: %.3f (threshold %.2f)\n", result.Score, result.Threshold)
		fmt.Fprintln(os.Stderr)
	}

	rep := report.New(Version, report.JudgeMeta{
		Provider: cfg.Judge.Provider,
		Model:    cfg.Judge.Model,
	}, startedAt, []model.Result{*result})

	if err := renderReport(rep, outJSON, outMD, cfg.Output.IncludeFooter); err != nil {
		return err
	}

	rep.RenderSummary(os.Stdout)

	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

// renderReport writes the requested artifacts; a path left empty skips
// that format
func renderReport(rep *report.Report, jsonPath, mdPath string, includeFooter bool) error {
	if jsonPath != "" {
		if err := rep.RenderJSON(jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := rep.RenderMarkdown(mdPath, includeFooter); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", mdPath)
		}
	}
	return nil
}
