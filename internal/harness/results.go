// internal/harness/results.go
package harness

import (
	"strings"
	"time"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/textproc"
)

// summarize builds per-completion-length summaries from trial rows, in
// experiment order. Lengths without trials are omitted.
func summarize(trials []TrialResult) []LengthSummary {
	byLength := map[completion.CompletionLength][]TrialResult{}
	for _, t := range trials {
		l := t.Record.CompletionLength
		byLength[l] = append(byLength[l], t)
	}

	out := make([]LengthSummary, 0, len(byLength))
	for _, l := range completion.CompletionLengths {
		rows, ok := byLength[l]
		if !ok {
			continue
		}
		s := LengthSummary{CompletionLength: l, Trials: len(rows)}

		var latencies, words sample
		for _, r := range rows {
			latencies.addDuration(r.Latency)
			switch {
			case r.Failed:
				s.Failed++
				continue
			case r.Record.GeneratedText == "":
				s.Empty++
			case isPrefixMatch(r.Record.GeneratedText, r.Record.HiddenText):
				s.PrefixMatches++
			}
			words = append(words, float64(len(strings.Fields(r.Record.GeneratedText))))
		}

		s.LatencyP50 = latencies.quantile(0.50)
		s.LatencyP95 = latencies.quantile(0.95)
		s.WordsMean, s.WordsStd = words.meanStd()
		out = append(out, s)
	}
	return out
}

// summarizeContexts shows how much surrounding text helps: prefix-match rate and
// latency per context length, with and without history documents.
func summarizeContexts(trials []TrialResult) []ContextSummary {
	type acc struct {
		ContextSummary
		latencies sample
	}
	byContext := map[textproc.ContextLength]*acc{}
	for _, t := range trials {
		cl := t.Record.ContextLength
		a, ok := byContext[cl]
		if !ok {
			a = &acc{ContextSummary: ContextSummary{ContextLength: cl}}
			byContext[cl] = a
		}
		a.Trials++
		a.latencies.addDuration(t.Latency)
		if t.Failed {
			a.Failed++
			continue
		}
		if !isPrefixMatch(t.Record.GeneratedText, t.Record.HiddenText) {
			continue
		}
		if t.Record.WithHistory {
			a.PrefixMatchesWithHistory++
		} else {
			a.PrefixMatchesWithoutHistory++
		}
	}

	out := make([]ContextSummary, 0, len(byContext))
	for _, cl := range textproc.ContextLengths {
		a, ok := byContext[cl]
		if !ok {
			continue
		}
		a.LatencyP50 = a.latencies.quantile(0.50)
		a.LatencyP95 = a.latencies.quantile(0.95)
		out = append(out, a.ContextSummary)
	}
	return out
}

// buildExperimentResult packs everything with timestamps.
func buildExperimentResult(cfg ExperimentConfig, started time.Time, skipped int, trials []TrialResult) ExperimentResult {
	return ExperimentResult{
		RunID:            cfg.RunID,
		Batches:          cfg.Batches,
		SkippedBatches:   skipped,
		Trials:           trials,
		Summaries:        summarize(trials),
		ContextSummaries: summarizeContexts(trials),
		StartedAt:        started,
		FinishedAt:       time.Now(),
	}
}
