package apperr

import (
	"errors"
	"fmt"
)

// Failure categories surfaced to the caller. Handlers map these to HTTP
// status codes; nothing below this package inspects raw store errors.
var (
	ErrStore               = errors.New("store failure")
	ErrAuthRequired        = errors.New("authentication required")
	ErrForbiddenTransition = errors.New("forbidden transition")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
)

// Store wraps a record-store error with the operation that failed.
func Store(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStore)
}

// Validation reports a locally rejected input, before any store round trip.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func Forbidden(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbiddenTransition)...)
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
