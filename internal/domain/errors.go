package domain

import "errors"

// Store-level errors shared across services.
var (
	// ErrNotFound is returned when an order, entry or request does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when the tracking record changed between read
	// and write. The caller should retry the whole operation.
	ErrConflict = errors.New("version conflict")
)
