// internal/completion/params.go

// Package completion requests cursor completions from a hosted text
// generation model.
package completion

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned by ParseCompletionLength for unknown lengths.
var ErrInvalidLength = errors.New("invalid completion length")

// CompletionLength selects how much text the model is asked to generate.
type CompletionLength string

const (
	LengthShort  CompletionLength = "short"
	LengthMedium CompletionLength = "medium"
	LengthLong   CompletionLength = "long"
)

// CompletionLengths lists every completion length in experiment order.
var CompletionLengths = []CompletionLength{LengthShort, LengthMedium, LengthLong}

// ParseCompletionLength validates s as a completion length.
func ParseCompletionLength(s string) (CompletionLength, error) {
	l := CompletionLength(s)
	if _, ok := lengthTable[l]; !ok {
		return "", fmt.Errorf("%w: %q must be one of %v", ErrInvalidLength, s, CompletionLengths)
	}
	return l, nil
}

// Params is the generation parameter set sent with a request. Values are
// built per call and never shared between requests.
type Params struct {
	MaxNewTokens       int      `json:"max_new_tokens"`
	MinNewTokens       int      `json:"min_new_tokens"`
	Stop               []string `json:"stop"`
	NumReturnSequences int      `json:"num_return_sequences"`
	DoSample           bool     `json:"do_sample"`
	Temperature        float64  `json:"temperature"`
	TopP               float64  `json:"top_p"`
	ReturnFullText     bool     `json:"return_full_text"`
	RepetitionPenalty  float64  `json:"repetition_penalty"`
	LengthPenalty      float64  `json:"length_penalty"`
	EOSTokenID         []int    `json:"eos_token_id"`
}

// DefaultParams returns the base parameter template.
func DefaultParams() Params {
	return Params{
		MaxNewTokens:       5,
		MinNewTokens:       1,
		Stop:               []string{},
		NumReturnSequences: 1,
		DoSample:           true,
		Temperature:        0.3,
		TopP:               0.7,
		ReturnFullText:     false,
		RepetitionPenalty:  1.2,
		LengthPenalty:      1,
		EOSTokenID:         []int{50256},
	}
}

// lengthParams are the per-length overrides applied on top of the base template.
type lengthParams struct {
	maxNewTokens  int
	minNewTokens  int
	stop          []string
	lengthPenalty float64
}

var lengthTable = map[CompletionLength]lengthParams{
	LengthShort:  {maxNewTokens: 5, minNewTokens: 1, stop: []string{".", ",", ";", ":"}, lengthPenalty: 1.5},
	LengthMedium: {maxNewTokens: 20, minNewTokens: 5, stop: []string{"."}, lengthPenalty: 1.0},
	LengthLong:   {maxNewTokens: 50, minNewTokens: 20, stop: []string{}, lengthPenalty: 0.5},
}

// ParamsFor merges the overrides for length into a copy of base. Unknown
// lengths use the short overrides; ok reports whether length was recognized.
func ParamsFor(base Params, length CompletionLength) (p Params, ok bool) {
	lp, ok := lengthTable[length]
	if !ok {
		lp = lengthTable[LengthShort]
	}
	p = base
	p.MaxNewTokens = lp.maxNewTokens
	p.MinNewTokens = lp.minNewTokens
	p.Stop = append([]string{}, lp.stop...)
	p.LengthPenalty = lp.lengthPenalty
	p.EOSTokenID = append([]int{}, base.EOSTokenID...)
	return p, ok
}
