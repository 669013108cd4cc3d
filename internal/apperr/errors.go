package apperr

import "errors"

var (
	// ErrInvalidInput marks user input that fails validation, such as an
	// empty habit label.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an operation against an unknown habit id.
	ErrNotFound = errors.New("not found")

	// ErrCorruptState marks a persisted record that failed to deserialize.
	// Callers recover by resetting to an empty/default state; this error is
	// logged but never surfaced to the user.
	ErrCorruptState = errors.New("corrupt persisted state")
)
