package berrytally

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a record or package group
// that does not exist in the log.
var ErrNotFound = errors.New("not found")

// ErrInvalidBackup is returned by Restore when the payload is not a backup
// this engine can read.
var ErrInvalidBackup = errors.New("invalid backup payload")

// ValidationError rejects a record before it reaches the log. The log itself
// is never validated after the fact: a record that passed construction is
// authoritative forever.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InsufficientError rejects a package action that asks for more bags than the
// group currently holds. Available carries the actual count so the caller can
// surface it.
type InsufficientError struct {
	Requested int
	Available int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient availability: requested %d, only %d available", e.Requested, e.Available)
}
