// internal/textproc/errors.go
package textproc

import "errors"

var (
	// ErrInvalidArgument is returned for an unrecognized context length or cursor position.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooFewParagraphs is returned when a cursor split needs at least two paragraphs.
	ErrTooFewParagraphs = errors.New("too few paragraphs")
)
