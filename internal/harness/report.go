// internal/harness/report.go
package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	batchStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	genStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func printBatchHeader(w io.Writer, batch int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, batchStyle.Render(fmt.Sprintf("Batch %d", batch)))
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

// printTrial writes the parameters, the text around the cursor and the
// generated completion of one trial.
func printTrial(w io.Writer, t TrialResult) {
	r := t.Record
	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Test Parameters:"))
	fmt.Fprintf(w, "- Context Length: %s\n", r.ContextLength)
	fmt.Fprintf(w, "- Cursor Position: %s\n", r.CursorPosition)
	fmt.Fprintf(w, "- Completion Length: %s\n", r.CompletionLength)
	fmt.Fprintf(w, "- With History: %t\n", r.WithHistory)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Before Cursor:"))
	fmt.Fprintln(w, r.BeforeCursor)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Generated Text:"))
	if t.Failed {
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("[] (request failed: %s)", t.Error)))
	} else {
		fmt.Fprintln(w, genStyle.Render("["+r.GeneratedText+"]"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("After Cursor:"))
	fmt.Fprintln(w, r.AfterCursor)
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

// PrintSummary writes a concise per-length report of res.
func PrintSummary(w io.Writer, res ExperimentResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Run %s: %d trials, %d of %d batches skipped",
		res.RunID, len(res.Trials), res.SkippedBatches, res.Batches)))
	for _, s := range res.Summaries {
		fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("COMPLETION LENGTH: %s", s.CompletionLength)))
		fmt.Fprintf(w, "  Trials / failed / empty: %d / %d / %d\n", s.Trials, s.Failed, s.Empty)
		fmt.Fprintf(w, "  Prefix matches: %d\n", s.PrefixMatches)
		fmt.Fprintf(w, "  Latency p50/p95: %.1f / %.1f ms\n", s.LatencyP50, s.LatencyP95)
		fmt.Fprintf(w, "  Generated words mean±std: %.2f ± %.2f\n", s.WordsMean, s.WordsStd)
	}
	for _, s := range res.ContextSummaries {
		fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("CONTEXT LENGTH: %s", s.ContextLength)))
		fmt.Fprintf(w, "  Trials / failed: %d / %d\n", s.Trials, s.Failed)
		fmt.Fprintf(w, "  Prefix matches with / without history: %d / %d\n",
			s.PrefixMatchesWithHistory, s.PrefixMatchesWithoutHistory)
		fmt.Fprintf(w, "  Latency p50/p95: %.1f / %.1f ms\n", s.LatencyP50, s.LatencyP95)
	}
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("finished in %s", res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond))))
}

// progressBar renders a static progress line; no bubbletea program is needed.
type progressBar struct {
	model progress.Model
}

func newProgressBar() progressBar {
	return progressBar{model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))}
}

func (p progressBar) render(done, total int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	if pct > 1 {
		pct = 1
	}
	return fmt.Sprintf("%s %d/%d", p.model.ViewAs(pct), done, total)
}
