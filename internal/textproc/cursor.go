// internal/textproc/cursor.go
package textproc

import (
	"fmt"
	"strings"
	"unicode"
)

// CursorPosition controls where inside a paragraph the simulated cursor falls.
type CursorPosition string

const (
	CursorSentenceMiddle CursorPosition = "sentence_middle"
	CursorSentenceEnd    CursorPosition = "sentence_end"
)

// CursorPositions lists every cursor position in experiment order.
var CursorPositions = []CursorPosition{CursorSentenceMiddle, CursorSentenceEnd}

// ParseCursorPosition validates s as a cursor position.
func ParseCursorPosition(s string) (CursorPosition, error) {
	switch c := CursorPosition(s); c {
	case CursorSentenceMiddle, CursorSentenceEnd:
		return c, nil
	}
	return "", fmt.Errorf("%w: cursor position %q must be one of %v", ErrInvalidArgument, s, CursorPositions)
}

// Split is the result of placing a cursor inside a context window.
type Split struct {
	Before string // text before the cursor
	After  string // text after the hidden span
	Hidden string // ground truth removed from the prompt

	// Fallback is set when the pivot paragraph had no candidate position and
	// the whole pivot plus the next paragraph became hidden text.
	Fallback bool
}

// SplitAtCursor places a cursor in the paragraph just before the middle of
// the window. The rest of that paragraph and the middle paragraph itself
// become the hidden text; paragraphs after the middle form the after text.
func SplitAtCursor(paragraphs []string, position CursorPosition, rng Rand) (Split, error) {
	if _, err := ParseCursorPosition(string(position)); err != nil {
		return Split{}, err
	}
	n := len(paragraphs)
	if n < 2 {
		return Split{}, fmt.Errorf("%w: cursor split needs 2 paragraphs, got %d", ErrTooFewParagraphs, n)
	}

	mid := n / 2
	pivot := []rune(paragraphs[mid-1])
	after := strings.Join(paragraphs[mid+1:], "\n")

	candidates := cursorCandidates(pivot, position)
	if len(candidates) == 0 {
		return Split{
			After:    trimLeft(after),
			Hidden:   trimLeft(string(pivot) + "\n" + paragraphs[mid]),
			Fallback: true,
		}, nil
	}

	p := candidates[rng.IntN(len(candidates))]
	head := string(pivot[:p+1])
	hidden := string(pivot[p+1:]) + "\n" + paragraphs[mid]

	before := make([]string, 0, mid)
	before = append(before, paragraphs[:mid-1]...)
	before = append(before, head)

	return Split{
		Before: trimLeft(strings.Join(before, "\n")),
		After:  trimLeft(after),
		Hidden: trimLeft(hidden),
	}, nil
}

// cursorCandidates returns the rune indices after which the cursor may sit.
func cursorCandidates(pivot []rune, position CursorPosition) []int {
	var out []int
	switch position {
	case CursorSentenceMiddle:
		for i := 0; i < len(pivot)-1; i++ {
			if !isSentenceEnd(pivot[i]) && !isSentenceEnd(pivot[i+1]) {
				out = append(out, i)
			}
		}
	case CursorSentenceEnd:
		for i, r := range pivot {
			if r == '.' {
				out = append(out, i)
			}
		}
	}
	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
