// Package widget holds the error taxonomy shared by the interactive widgets.
//
// Both kinds of error are programmer-contract violations, not runtime
// conditions to recover from. Widgets return them immediately and leave
// their state untouched.
package widget

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates malformed input handed to a widget.
	ErrValidation = errors.New("widget: validation failed")

	// ErrInvalidState indicates an operation called in a state that does not allow it.
	ErrInvalidState = errors.New("widget: invalid state")
)

// ValidationError wraps ErrValidation with the operation and reason.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Op, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidStateError wraps ErrInvalidState with the operation and the state it was called in.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s not allowed in %s", ErrInvalidState.Error(), e.Op, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// Invalid builds a ValidationError with a formatted reason.
func Invalid(op, format string, args ...any) error {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
