// internal/textproc/context.go
package textproc

import "fmt"

// ContextLength controls how many paragraphs form the sampling window.
type ContextLength string

const (
	ContextNo     ContextLength = "no"
	ContextShort  ContextLength = "short"
	ContextMedium ContextLength = "medium"
	ContextLong   ContextLength = "long"
)

// ContextLengths lists every context length in experiment order.
var ContextLengths = []ContextLength{ContextNo, ContextShort, ContextMedium, ContextLong}

// windowSizes maps a context length to its paragraph count. Long is absent:
// it always takes the whole article.
var windowSizes = map[ContextLength]int{
	ContextNo:     2,
	ContextShort:  4,
	ContextMedium: 8,
}

// ParseContextLength validates s as a context length.
func ParseContextLength(s string) (ContextLength, error) {
	c := ContextLength(s)
	if c == ContextLong {
		return c, nil
	}
	if _, ok := windowSizes[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: context length %q must be one of %v", ErrInvalidArgument, s, ContextLengths)
}

// WindowSize returns the number of paragraphs a window of this length holds
// given n available paragraphs.
func (c ContextLength) WindowSize(n int) int {
	if w, ok := windowSizes[c]; ok && w < n {
		return w
	}
	return n
}

// SampleContext splits text into paragraphs and samples a window from them.
func SampleContext(text string, length ContextLength, rng Rand) ([]string, error) {
	return SampleParagraphs(SplitParagraphs(text), length, rng)
}

// SampleParagraphs returns a contiguous window of paragraphs sized by length,
// starting at a uniformly random offset. When fewer paragraphs exist than the
// window needs, all of them are returned unchanged.
func SampleParagraphs(paragraphs []string, length ContextLength, rng Rand) ([]string, error) {
	if _, err := ParseContextLength(string(length)); err != nil {
		return nil, err
	}
	n := len(paragraphs)
	w := length.WindowSize(n)
	if w >= n {
		return paragraphs, nil
	}
	start := rng.IntN(n - w + 1)
	return paragraphs[start : start+w], nil
}
