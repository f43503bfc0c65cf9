package dataset

import "errors"

var (
	// ErrMissingInput marks a source that could not be located or opened.
	ErrMissingInput = errors.New("input not found")
	// ErrMalformedInput marks a source whose columns or values do not match the expected schema.
	ErrMalformedInput = errors.New("malformed input")
)
