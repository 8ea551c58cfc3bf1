// internal/prompt/truncate.go
package prompt

import "strings"

// CountTokens approximates a token count by splitting on whitespace.
func CountTokens(text string) int {
	return len(strings.Fields(text))
}

// TruncateKeepStart keeps the first max whitespace-separated tokens of text.
// The result is re-joined with single spaces, so original line breaks and
// runs of whitespace are not preserved. A max <= 0 only normalizes.
func TruncateKeepStart(text string, max int) string {
	tokens := strings.Fields(text)
	if max > 0 && len(tokens) > max {
		tokens = tokens[:max]
	}
	return strings.Join(tokens, " ")
}

// TruncateKeepEnd keeps the last max whitespace-separated tokens of text.
func TruncateKeepEnd(text string, max int) string {
	tokens := strings.Fields(text)
	if max > 0 && len(tokens) > max {
		tokens = tokens[len(tokens)-max:]
	}
	return strings.Join(tokens, " ")
}
