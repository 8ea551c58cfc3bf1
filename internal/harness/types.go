// internal/harness/types.go
// Package harness drives cursor-completion experiments over article batches
// and records one row per trial.
package harness

import (
	"context"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/dataset"
	"github.com/mwiater/cursorbench/internal/textproc"
)

// Header is the fixed column header of the experiment output file.
var Header = []string{
	"BATCH",
	"CONTEXT LENGTH",
	"CURSOR POSITION",
	"COMPLETION LENGTH",
	"WITH HISTORY",
	"BEFORE CURSOR",
	"AFTER CURSOR",
	"GENERATED TEXT",
	"HIDDEN MASKED TEXT",
}

// Completer requests a completion for one trial. *completion.Completer implements it.
type Completer interface {
	Complete(ctx context.Context, req completion.Request) completion.Result
}

// Record is one persisted experiment row.
type Record struct {
	Batch            int // 1-based
	ContextLength    textproc.ContextLength
	CursorPosition   textproc.CursorPosition
	CompletionLength completion.CompletionLength
	WithHistory      bool
	BeforeCursor     string // display-truncated before text
	AfterCursor      string // display-truncated after text
	GeneratedText    string
	HiddenText       string
}

// Row returns the record's fields in Header order.
func (r Record) Row() []string {
	withHistory := "False"
	if r.WithHistory {
		withHistory = "True"
	}
	return []string{
		strconv.Itoa(r.Batch),
		string(r.ContextLength),
		string(r.CursorPosition),
		string(r.CompletionLength),
		withHistory,
		r.BeforeCursor,
		r.AfterCursor,
		r.GeneratedText,
		r.HiddenText,
	}
}

// ExperimentConfig configures a run.
type ExperimentConfig struct {
	// Number of batches; batch b uses articles 4b .. 4b+3.
	Batches int

	// Article source.
	Source dataset.Source

	// Completion requester.
	Completer Completer

	// Destination for experiment rows.
	Writer *RecordWriter

	// Randomness for window and cursor selection. Defaults to an unseeded source.
	Rand textproc.Rand

	// Human-readable trial output. Defaults to io.Discard.
	Console io.Writer

	// Whether to print a progress bar after every trial.
	ShowProgress bool

	// Identifier attached to the report.
	RunID string

	Logger *zap.Logger
}

// TrialResult captures a single completion trial.
type TrialResult struct {
	Record  Record        `json:"record"`
	Failed  bool          `json:"failed"` // the request failed, as opposed to returning nothing
	Error   string        `json:"error,omitempty"`
	Latency time.Duration `json:"latency"`
}

// LengthSummary aggregates trials that share a completion length.
type LengthSummary struct {
	CompletionLength completion.CompletionLength `json:"completion_length"`

	Trials int `json:"trials"`
	Failed int `json:"failed"`
	Empty  int `json:"empty"` // succeeded with no text

	// Trials whose generated text is a prefix of the hidden text, ignoring whitespace differences.
	PrefixMatches int `json:"prefix_matches"`

	// p50/p95 request latency in milliseconds across all trials
	LatencyP50 float64 `json:"latency_p50_ms"`
	LatencyP95 float64 `json:"latency_p95_ms"`

	// Mean +/- std of generated words over successful trials
	WordsMean float64 `json:"words_mean"`
	WordsStd  float64 `json:"words_std"`
}

// ContextSummary aggregates trials that share a context length.
type ContextSummary struct {
	ContextLength textproc.ContextLength `json:"context_length"`

	Trials int `json:"trials"`
	Failed int `json:"failed"`

	PrefixMatchesWithHistory    int `json:"prefix_matches_with_history"`
	PrefixMatchesWithoutHistory int `json:"prefix_matches_without_history"`

	LatencyP50 float64 `json:"latency_p50_ms"`
	LatencyP95 float64 `json:"latency_p95_ms"`
}

// ExperimentResult is the top-level artifact returned by RunExperiments.
type ExperimentResult struct {
	RunID          string          `json:"run_id"`
	Batches        int             `json:"batches"`
	SkippedBatches int             `json:"skipped_batches"`
	Trials         []TrialResult   `json:"trials"`
	Summaries      []LengthSummary `json:"summaries"`

	ContextSummaries []ContextSummary `json:"context_summaries"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
