package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrMalformedLine     = errors.New("malformed corpus line")
	ErrNoFormat          = errors.New("no corpus format")
	ErrUnknownFeaturizer = errors.New("unknown featurizer")
	ErrUnknownFormat     = errors.New("unknown corpus format")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNotFound          = errors.New("not found")
)
