package domain

import "errors"

// Domain-level errors
var (
	ErrEmptyQuery = errors.New("query must not be empty")
	ErrNoAdapters = errors.New("adapter registry is empty")
)
