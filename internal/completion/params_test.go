// internal/completion/params_test.go
package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompletionLength(t *testing.T) {
	for _, l := range CompletionLengths {
		got, err := ParseCompletionLength(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseCompletionLength("tiny")
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestParamsFor_Table(t *testing.T) {
	cases := []struct {
		length  CompletionLength
		max     int
		min     int
		stop    []string
		penalty float64
	}{
		{LengthShort, 5, 1, []string{".", ",", ";", ":"}, 1.5},
		{LengthMedium, 20, 5, []string{"."}, 1.0},
		{LengthLong, 50, 20, []string{}, 0.5},
	}
	for _, tc := range cases {
		t.Run(string(tc.length), func(t *testing.T) {
			p, ok := ParamsFor(DefaultParams(), tc.length)
			require.True(t, ok)
			assert.Equal(t, tc.max, p.MaxNewTokens)
			assert.Equal(t, tc.min, p.MinNewTokens)
			assert.Equal(t, tc.stop, p.Stop)
			assert.Equal(t, tc.penalty, p.LengthPenalty)
			assert.True(t, p.DoSample)
			assert.Equal(t, 0.3, p.Temperature)
			assert.Equal(t, 0.7, p.TopP)
			assert.Equal(t, 1.2, p.RepetitionPenalty)
			assert.Equal(t, 1, p.NumReturnSequences)
			assert.False(t, p.ReturnFullText)
			assert.Equal(t, []int{50256}, p.EOSTokenID)
		})
	}
}

func TestParamsFor_ShortIgnoresCallerOverrides(t *testing.T) {
	base := DefaultParams()
	base.MaxNewTokens = 999
	base.MinNewTokens = 100
	base.Stop = []string{"###"}
	base.LengthPenalty = 9
	base.Temperature = 0.9

	p, ok := ParamsFor(base, LengthShort)
	require.True(t, ok)
	assert.Equal(t, 5, p.MaxNewTokens)
	assert.Equal(t, 1, p.MinNewTokens)
	assert.Equal(t, []string{".", ",", ";", ":"}, p.Stop)
	assert.Equal(t, 1.5, p.LengthPenalty)
	assert.Equal(t, 0.9, p.Temperature, "non-length settings come from the base")
}

func TestParamsFor_UnknownFallsBackToShort(t *testing.T) {
	p, ok := ParamsFor(DefaultParams(), CompletionLength("huge"))
	assert.False(t, ok)
	want, _ := ParamsFor(DefaultParams(), LengthShort)
	assert.Equal(t, want, p)
}

func TestParamsFor_DoesNotShareState(t *testing.T) {
	base := DefaultParams()
	medium, _ := ParamsFor(base, LengthMedium)
	medium.Stop[0] = "!"
	medium.EOSTokenID[0] = 1

	again, _ := ParamsFor(base, LengthMedium)
	assert.Equal(t, []string{"."}, again.Stop)
	assert.Equal(t, []int{50256}, base.EOSTokenID)
	assert.Equal(t, DefaultParams(), base)
}
