// internal/harness/runner.go
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/dataset"
	"github.com/mwiater/cursorbench/internal/textproc"
)

// displayChars is how much before/after text is kept in the output rows.
const displayChars = 200

var historyModes = []bool{true, false}

// Trial counts per unit of work, used to keep progress accurate when a unit is skipped.
var (
	trialsPerCursor  = len(completion.CompletionLengths) * len(historyModes)
	trialsPerContext = trialsPerCursor * len(textproc.CursorPositions)
	trialsPerBatch   = trialsPerContext * len(textproc.ContextLengths)
)

// RunExperiments is the single exported entrypoint.
// Provide a populated ExperimentConfig, and it returns every trial plus
// per-length summaries. Request failures are recorded as empty completions and
// never abort the run; a cancelled context or a failed write does, returning
// the trials completed so far.
func RunExperiments(ctx context.Context, cfg ExperimentConfig) (ExperimentResult, error) {
	if cfg.Source == nil {
		return ExperimentResult{}, errors.New("an article Source is required")
	}
	if cfg.Completer == nil {
		return ExperimentResult{}, errors.New("a Completer is required")
	}
	if cfg.Writer == nil {
		return ExperimentResult{}, errors.New("a RecordWriter is required")
	}
	if cfg.Batches <= 0 {
		cfg.Batches = 1
	}
	if cfg.Rand == nil {
		cfg.Rand = textproc.NewRand(0)
	}
	if cfg.Console == nil {
		cfg.Console = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := &runner{
		cfg:     cfg,
		log:     cfg.Logger,
		planned: cfg.Batches * trialsPerBatch,
		bar:     newProgressBar(),
	}
	started := time.Now()
	err := r.run(ctx)
	return buildExperimentResult(cfg, started, r.skipped, r.trials), err
}

type runner struct {
	cfg     ExperimentConfig
	log     *zap.Logger
	trials  []TrialResult
	skipped int

	planned, done int
	bar           progressBar
}

func (r *runner) run(ctx context.Context) error {
	for b := 0; b < r.cfg.Batches; b++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runBatch(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) runBatch(ctx context.Context, b int) error {
	log := r.log.With(zap.Int("batch", b+1))
	printBatchHeader(r.cfg.Console, b+1)

	batch, err := dataset.LoadBatch(ctx, r.cfg.Source, b)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("could not load batch", zap.Error(err))
		r.skipBatch()
		return nil
	}
	if strings.TrimSpace(batch.Test.Content) == "" {
		log.Warn("batch did not find a suitable test article")
		fmt.Fprintf(r.cfg.Console, "Batch %d did not find a suitable test article\n", b+1)
		r.skipBatch()
		return nil
	}
	log.Debug("batch loaded",
		zap.Int("test_article", batch.Test.Index),
		zap.Int("history_docs", len(batch.History)))

	for _, cl := range textproc.ContextLengths {
		window, err := textproc.SampleContext(batch.Test.Content, cl, r.cfg.Rand)
		if err != nil {
			return err
		}
		if len(window) == 0 {
			log.Warn("insufficient number of paragraphs", zap.String("context_length", string(cl)))
			r.advance(trialsPerContext)
			continue
		}
		for _, cp := range textproc.CursorPositions {
			if err := r.runCursor(ctx, log, b, batch.History, window, cl, cp); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *runner) runCursor(ctx context.Context, log *zap.Logger, b int, history, window []string,
	cl textproc.ContextLength, cp textproc.CursorPosition) error {
	log = log.With(zap.String("context_length", string(cl)), zap.String("cursor_position", string(cp)))

	split, err := textproc.SplitAtCursor(window, cp, r.cfg.Rand)
	if errors.Is(err, textproc.ErrTooFewParagraphs) {
		log.Warn("insufficient number of paragraphs", zap.Int("paragraphs", len(window)))
		r.advance(trialsPerCursor)
		return nil
	}
	if err != nil {
		return err
	}
	if split.Fallback {
		log.Info("no suitable cursor position found, hiding whole pivot paragraph")
	}

	beforeDisplay := clipTail(split.Before, displayChars)
	afterDisplay := clipHead(split.After, displayChars)

	for _, length := range completion.CompletionLengths {
		for _, withHistory := range historyModes {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := completion.Request{Before: split.Before, After: split.After, Length: length}
			if withHistory {
				req.History = history
			}
			res := r.cfg.Completer.Complete(ctx, req)
			// A request cut short by cancellation is not a trial outcome.
			if err := ctx.Err(); err != nil {
				return err
			}

			trial := TrialResult{
				Record: Record{
					Batch:            b + 1,
					ContextLength:    cl,
					CursorPosition:   cp,
					CompletionLength: length,
					WithHistory:      withHistory,
					BeforeCursor:     beforeDisplay,
					AfterCursor:      afterDisplay,
					GeneratedText:    res.Text,
					HiddenText:       split.Hidden,
				},
				Failed:  res.Failed(),
				Latency: res.Latency,
			}
			if res.Err != nil {
				trial.Error = res.Err.Error()
			}
			if err := r.cfg.Writer.Write(trial.Record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
			r.trials = append(r.trials, trial)

			printTrial(r.cfg.Console, trial)
			r.advance(1)
		}
	}
	return nil
}

func (r *runner) skipBatch() {
	r.skipped++
	r.advance(trialsPerBatch)
}

func (r *runner) advance(n int) {
	r.done += n
	if r.cfg.ShowProgress {
		fmt.Fprintln(r.cfg.Console, r.bar.render(r.done, r.planned))
	}
}
