// internal/textproc/paragraphs.go

// Package textproc derives (context, cursor split, hidden answer) samples from
// raw article text.
package textproc

import "strings"

// SplitParagraphs splits text on line breaks, trims every line and drops the
// empty ones. Order is preserved; empty input yields an empty slice.
func SplitParagraphs(text string) []string {
	paragraphs := []string{}
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
