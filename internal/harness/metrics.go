// internal/harness/metrics.go
package harness

import (
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// sample holds observations for one summary column.
type sample []float64

func (s *sample) addDuration(d time.Duration) {
	*s = append(*s, float64(d)/float64(time.Millisecond))
}

// quantile interpolates linearly between the closest ranks. The receiver is
// not reordered.
func (s sample) quantile(q float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s))
	q = min(max(q, 0), 1)
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo == len(sorted)-1 {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}

// meanStd returns the mean and population standard deviation in one pass
// (Welford).
func (s sample) meanStd() (mean, std float64) {
	if len(s) == 0 {
		return 0, 0
	}
	var m2 float64
	for i, v := range s {
		d := v - mean
		mean += d / float64(i+1)
		m2 += d * (v - mean)
	}
	return mean, math.Sqrt(m2 / float64(len(s)))
}

// isPrefixMatch reports whether generated is a non-empty prefix of hidden
// once both are whitespace-normalized.
func isPrefixMatch(generated, hidden string) bool {
	g := strings.Join(strings.Fields(generated), " ")
	if g == "" {
		return false
	}
	return strings.HasPrefix(strings.Join(strings.Fields(hidden), " "), g)
}

// clipTail keeps the last n characters of s, marking the cut with "...".
func clipTail(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return "..." + string(r[len(r)-n:])
}

// clipHead keeps the first n characters of s, marking the cut with "...".
func clipHead(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
