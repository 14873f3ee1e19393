package readlog

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a book or request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested book does not exist.
	ErrNotFound = errors.New("not found")
)
