package dataset

import "errors"

// Errors returned by dataset loaders.
var (
	// ErrEmptySeries indicates a source produced no points.
	ErrEmptySeries = errors.New("series has no points")

	// ErrUnknownGenerator indicates an unrecognized generator name.
	ErrUnknownGenerator = errors.New("unknown generator")

	// ErrTooManyPoints indicates a script exceeded the point limit.
	ErrTooManyPoints = errors.New("too many points")
)
