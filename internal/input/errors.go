package input

import "errors"

var (
	ErrUnknownFormat = errors.New("input: unknown format")
	ErrNotSequence   = errors.New("input: document is not a sequence")
	ErrInvalidInput  = errors.New("input: malformed document")
)
