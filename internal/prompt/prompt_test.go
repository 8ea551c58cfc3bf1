// internal/prompt/prompt_test.go
package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateKeepStart(t *testing.T) {
	assert.Equal(t, "a b", TruncateKeepStart("a b c d", 2))
	assert.Equal(t, "a b c d", TruncateKeepStart("a  b\nc\td", 10))
	assert.Equal(t, "", TruncateKeepStart("   ", 3))
	assert.Equal(t, "a b c", TruncateKeepStart("a\n\nb c", 0))
}

func TestTruncateKeepEnd(t *testing.T) {
	assert.Equal(t, "c d", TruncateKeepEnd("a b c d", 2))
	assert.Equal(t, "a b c d", TruncateKeepEnd("a b\n c d", 4))
	assert.Equal(t, "", TruncateKeepEnd("", 5))
}

func TestTruncate_IdempotentWhenWithinBudget(t *testing.T) {
	text := "The quick  brown\nfox jumps"
	once := TruncateKeepStart(text, 8000)
	assert.Equal(t, "The quick brown fox jumps", once)
	assert.Equal(t, once, TruncateKeepStart(once, 8000))
	assert.Equal(t, once, TruncateKeepEnd(once, 8000))

	cut := TruncateKeepEnd(text, 2)
	assert.Equal(t, cut, TruncateKeepEnd(cut, 2))
}

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, CountTokens(" \n "))
	assert.Equal(t, 3, CountTokens("one two\nthree"))
}

func TestBuild_WithoutHistory(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, "after text\n\nbefore text", b.Build("before text", "after text", nil))
	assert.Equal(t, "after\n\nbefore", b.Build("before", "after", []string{}))
}

func TestBuild_WithHistory(t *testing.T) {
	b := NewBuilder()
	got := b.Build("before", "after", []string{"doc one", "doc two"})
	// History is joined with blank lines and then re-tokenized, so the blank
	// line between documents collapses to a single space.
	assert.Equal(t, "doc one doc two\n\nafter\n\nbefore", got)
}

func TestBuild_AppliesBudgets(t *testing.T) {
	b := Builder{BeforeTokens: 2, AfterTokens: 2, HistoryTokens: 3}
	got := b.Build("b1 b2 b3 b4", "a1 a2 a3 a4", []string{"h1 h2", "h3 h4"})
	parts := strings.Split(got, "\n\n")
	require.Len(t, parts, 3)
	assert.Equal(t, "h1 h2 h3", parts[0])
	assert.Equal(t, "a1 a2", parts[1])
	assert.Equal(t, "b3 b4", parts[2])
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, DefaultTokenBudget, b.BeforeTokens)
	assert.Equal(t, DefaultTokenBudget, b.AfterTokens)
	assert.Equal(t, DefaultTokenBudget, b.HistoryTokens)
}
