// internal/prompt/prompt.go

// Package prompt assembles completion prompts from history documents and the
// text around a cursor, fitting each part into a token budget.
package prompt

import "strings"

// DefaultTokenBudget is the budget used for each prompt part unless configured.
const DefaultTokenBudget = 8000

// Builder assembles prompts. Zero budgets disable truncation for that part.
type Builder struct {
	BeforeTokens  int // budget for text before the cursor, keeps the end
	AfterTokens   int // budget for text after the cursor, keeps the start
	HistoryTokens int // budget for all history documents together, keeps the start
}

// NewBuilder returns a Builder with the default budgets.
func NewBuilder() Builder {
	return Builder{
		BeforeTokens:  DefaultTokenBudget,
		AfterTokens:   DefaultTokenBudget,
		HistoryTokens: DefaultTokenBudget,
	}
}

// Build returns the prompt for one completion request. The text after the
// cursor is placed ahead of the text before it, so the model continues
// directly from the before-cursor text:
//
//	[history "\n\n"] after "\n\n" before
func (b Builder) Build(before, after string, history []string) string {
	before = TruncateKeepEnd(before, b.BeforeTokens)
	after = TruncateKeepStart(after, b.AfterTokens)

	if len(history) == 0 {
		return after + "\n\n" + before
	}
	h := TruncateKeepStart(strings.Join(history, "\n\n"), b.HistoryTokens)
	return h + "\n\n" + after + "\n\n" + before
}
