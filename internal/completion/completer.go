// internal/completion/completer.go
package completion

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/prompt"
)

// Generator produces text for a prompt. *Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// Request is one completion trial.
type Request struct {
	Before  string           // text before the cursor
	After   string           // text after the hidden span
	History []string         // optional prior documents
	Length  CompletionLength // requested completion length
}

// Result is the outcome of a completion request. Text is empty both when the
// model produced nothing and when the request failed; Err tells them apart.
type Result struct {
	Text    string
	Err     error
	Latency time.Duration
	Params  Params
}

// Failed reports whether the request itself failed.
func (r Result) Failed() bool { return r.Err != nil }

// Completer builds prompts and requests completions for them.
type Completer struct {
	gen     Generator
	builder prompt.Builder
	base    Params
	logger  *zap.Logger
}

// NewCompleter returns a Completer. A nil logger discards log output.
func NewCompleter(gen Generator, builder prompt.Builder, base Params, logger *zap.Logger) *Completer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Completer{gen: gen, builder: builder, base: base, logger: logger}
}

// Complete requests a completion for req. It never returns an error: failures
// are logged and reported through Result.Err with an empty Text. Unknown
// lengths are treated as short.
func (c *Completer) Complete(ctx context.Context, req Request) Result {
	params, ok := ParamsFor(c.base, req.Length)
	if !ok {
		c.logger.Warn("unknown completion length, using short",
			zap.String("completion_length", string(req.Length)))
	}

	p := c.builder.Build(req.Before, req.After, req.History)

	start := time.Now()
	text, err := c.gen.Generate(ctx, p, params)
	res := Result{Latency: time.Since(start), Params: params}
	if err != nil {
		c.logger.Warn("completion request failed",
			zap.String("completion_length", string(req.Length)),
			zap.Int("prompt_tokens", prompt.CountTokens(p)),
			zap.Error(err))
		res.Err = err
		return res
	}
	res.Text = strings.TrimSpace(text)
	return res
}
