package domain

import "fmt"

// ValidationError means caller-supplied input failed a precondition. It is
// surfaced for correction and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError means the at-most-one-active-plan invariant was threatened
// by a concurrent write and self-healed. The operation's result is still
// valid; the conflict is reported for logging.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvariantViolation means a state that should be structurally impossible
// was observed. It indicates a bug upstream and is never silently corrected.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return e.Message
}

// StoreError wraps a failure of the underlying record store. It is
// propagated unchanged; retry policy belongs to the store client.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
