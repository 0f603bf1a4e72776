package indexer

import "errors"

var (
	// ErrStale is returned by callers that treat an outdated index as a failure.
	ErrStale = errors.New("index is out of date")

	// ErrInvalidParams wraps parameter validation failures.
	ErrInvalidParams = errors.New("invalid index parameters")
)
