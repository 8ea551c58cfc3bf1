// internal/harness/results_test.go
package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/textproc"
)

func TestSampleQuantile(t *testing.T) {
	assert.Equal(t, 0.0, sample(nil).quantile(0.5))
	vals := sample{40, 10, 30, 20}
	assert.Equal(t, 25.0, vals.quantile(0.5))
	assert.Equal(t, 10.0, vals.quantile(0))
	assert.Equal(t, 40.0, vals.quantile(1))
	assert.Equal(t, 40.0, vals.quantile(3), "q is clamped")
	assert.Equal(t, sample{40, 10, 30, 20}, vals, "input must not be reordered")
}

func TestSampleMeanStd(t *testing.T) {
	mean, std := sample{2, 4, 4, 4, 5, 5, 7, 9}.meanStd()
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, std)

	mean, std = sample(nil).meanStd()
	assert.Zero(t, mean)
	assert.Zero(t, std)

	var lat sample
	lat.addDuration(1500 * time.Microsecond)
	assert.Equal(t, sample{1.5}, lat)
}

func TestIsPrefixMatch(t *testing.T) {
	assert.True(t, isPrefixMatch("the council", "the  council\nvoted"))
	assert.False(t, isPrefixMatch("", "anything"))
	assert.False(t, isPrefixMatch("a mayor", "the council"))
}

func TestClip(t *testing.T) {
	long := strings.Repeat("é", 250)
	assert.Equal(t, "short", clipTail("short", 200))
	assert.Equal(t, "..."+strings.Repeat("é", 200), clipTail(long, 200))
	assert.Equal(t, strings.Repeat("é", 200)+"...", clipHead(long, 200))
	assert.Equal(t, strings.Repeat("x", 200), clipHead(strings.Repeat("x", 200), 200))
}

func TestSummarize(t *testing.T) {
	rec := func(l completion.CompletionLength, gen, hidden string) Record {
		return Record{CompletionLength: l, GeneratedText: gen, HiddenText: hidden}
	}
	trials := []TrialResult{
		{Record: rec(completion.LengthLong, "one two three", "x"), Latency: 30 * time.Millisecond},
		{Record: rec(completion.LengthShort, "the", "the end"), Latency: 10 * time.Millisecond},
		{Record: rec(completion.LengthShort, "", "the end"), Latency: 20 * time.Millisecond},
		{Record: rec(completion.LengthShort, "", "the end"), Failed: true, Latency: 40 * time.Millisecond},
	}
	got := summarize(trials)
	require.Len(t, got, 2)

	short := got[0]
	assert.Equal(t, completion.LengthShort, short.CompletionLength)
	assert.Equal(t, 3, short.Trials)
	assert.Equal(t, 1, short.Failed)
	assert.Equal(t, 1, short.Empty)
	assert.Equal(t, 1, short.PrefixMatches)
	assert.Equal(t, 20.0, short.LatencyP50)
	assert.Equal(t, 0.5, short.WordsMean)

	long := got[1]
	assert.Equal(t, completion.LengthLong, long.CompletionLength)
	assert.Equal(t, 3.0, long.WordsMean)
}

func TestSummarizeContexts(t *testing.T) {
	rec := func(cl textproc.ContextLength, withHistory bool, gen string) Record {
		return Record{ContextLength: cl, WithHistory: withHistory, GeneratedText: gen, HiddenText: "the vote was close"}
	}
	trials := []TrialResult{
		{Record: rec(textproc.ContextLong, true, "the vote"), Latency: 40 * time.Millisecond},
		{Record: rec(textproc.ContextNo, true, "the vote"), Latency: 10 * time.Millisecond},
		{Record: rec(textproc.ContextNo, false, "the"), Latency: 20 * time.Millisecond},
		{Record: rec(textproc.ContextNo, false, "a mayor"), Latency: 30 * time.Millisecond},
		{Record: rec(textproc.ContextNo, true, ""), Failed: true, Latency: 50 * time.Millisecond},
	}
	got := summarizeContexts(trials)
	require.Len(t, got, 2)

	no := got[0]
	assert.Equal(t, textproc.ContextNo, no.ContextLength)
	assert.Equal(t, 4, no.Trials)
	assert.Equal(t, 1, no.Failed)
	assert.Equal(t, 1, no.PrefixMatchesWithHistory)
	assert.Equal(t, 1, no.PrefixMatchesWithoutHistory)
	assert.Equal(t, 25.0, no.LatencyP50)

	long := got[1]
	assert.Equal(t, textproc.ContextLong, long.ContextLength)
	assert.Equal(t, 1, long.PrefixMatchesWithHistory)
	assert.Equal(t, 40.0, long.LatencyP95)
}

func TestRecordRow(t *testing.T) {
	r := Record{
		Batch:            2,
		ContextLength:    textproc.ContextMedium,
		CursorPosition:   textproc.CursorSentenceEnd,
		CompletionLength: completion.LengthMedium,
		WithHistory:      true,
		BeforeCursor:     "b",
		AfterCursor:      "a",
		GeneratedText:    "g",
		HiddenText:       "h",
	}
	assert.Equal(t, []string{"2", "medium", "sentence_end", "medium", "True", "b", "a", "g", "h"}, r.Row())
	r.WithHistory = false
	assert.Equal(t, "False", r.Row()[4])
	assert.Len(t, r.Row(), len(Header))
}

func TestCreateRecordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.csv")
	w, err := CreateRecordFile(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(Record{Batch: 1, GeneratedText: "multi\nline, \"quoted\""}))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	rows := readRows(t, bytes.NewBuffer(b))
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "multi\nline, \"quoted\"", rows[1][7])
}

func TestCreateRecordFile_BadPath(t *testing.T) {
	_, err := CreateRecordFile(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}

func TestPrintSummaryAndDemo(t *testing.T) {
	var buf bytes.Buffer
	start := time.Now()
	PrintSummary(&buf, ExperimentResult{
		RunID:     "abc",
		Batches:   1,
		Summaries: []LengthSummary{{CompletionLength: completion.LengthShort, Trials: 2}},
		ContextSummaries: []ContextSummary{{
			ContextLength: textproc.ContextShort, Trials: 2, PrefixMatchesWithHistory: 1,
		}},
		StartedAt:  start,
		FinishedAt: start.Add(time.Second),
	})
	assert.Contains(t, buf.String(), "Run abc")
	assert.Contains(t, buf.String(), "COMPLETION LENGTH: short")
	assert.Contains(t, buf.String(), "CONTEXT LENGTH: short")
	assert.Contains(t, buf.String(), "with / without history: 1 / 0")

	buf.Reset()
	PrintDemo(&buf, DemoHistory, DemoBefore, DemoAfter, "generated")
	assert.Contains(t, buf.String(), "Document 3:")
	assert.Contains(t, buf.String(), "<<generated>>")
}
