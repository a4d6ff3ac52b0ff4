package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// RenderJSON writes the report as indented JSON to the given path
func (r *Report) RenderJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to the given path
func (r *Report) RenderMarkdown(path string, includeFooter bool) error {
	var b strings.Builder

	b.WriteString("# Answer Relevancy Report\n\n")
	fmt.Fprintf(&b, "- Judge: %s", r.Judge.Provider)
	if r.Judge.Model != "" {
		fmt.Fprintf(&b, " (%s)", r.Judge.Model)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Cases: %d | Passed: %d | Failed: %d | Errored: %d\n",
		r.Summary.Cases, r.Summary.Passed, r.Summary.Failed, r.Summary.Errored)
	fmt.Fprintf(&b, "- Mean score: %.3f\n\n", r.Summary.MeanScore)

	for i, result := range r.Results {
		name := result.Case.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		fmt.Fprintf(&b, "## %s\n\n", name)

		if len(result.Case.ExpectedTags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(result.Case.ExpectedTags, ", "))
		}

		if result.Error != "" {
			fmt.Fprintf(&b, "**ERROR**: %s\n\n", result.Error)
			continue
		}

		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "**%s** — score %.3f (threshold %.2f)\n\n", status, result.Score, result.Threshold)
		fmt.Fprintf(&b, "> %s\n\n", result.Reason)

		if len(result.Verdicts) > 0 {
			b.WriteString("| # | Statement | Verdict | Reason |\n")
			b.WriteString("|---|-----------|---------|--------|\n")
			for j, v := range result.Verdicts {
				statement := ""
				if j < len(result.Statements) {
					statement = result.Statements[j].Text
				}
				fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
					j+1, mdCell(statement), v.Label.String(), mdCell(v.Reason))
			}
			b.WriteString("\n")
		}
	}

	if includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by relevia %s\n", r.Version)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary writes the compact per-run summary for interactive use
func (r *Report) RenderSummary(w io.Writer) {
	fmt.Fprintf(w, "\n")
	for i, result := range r.Results {
		name := result.Case.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		switch {
		case result.Error != "":
			fmt.Fprintf(w, "  ✗ %-30s ERROR  %s\n", name, result.Error)
		case result.Passed:
			fmt.Fprintf(w, "  ✓ %-30s %.3f\n", name, result.Score)
		default:
			fmt.Fprintf(w, "  ✗ %-30s %.3f  (threshold %.2f)\n", name, result.Score, result.Threshold)
		}
	}
	fmt.Fprintf(w, "\n  %d cases: %d passed, %d failed, %d errored | mean score %.3f\n\n",
		r.Summary.Cases, r.Summary.Passed, r.Summary.Failed, r.Summary.Errored, r.Summary.MeanScore)
}

// mdCell escapes pipe characters so table cells stay intact
func mdCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
