package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrInvalidID is returned when an identifier is malformed for the backing store.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidInput is returned for bad enum values or missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a record exists but is not in a legal source state.
	ErrConflict = errors.New("conflict")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// InvalidInputError carries a human readable reason and matches ErrInvalidInput.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// NewInvalidInput returns an error matching ErrInvalidInput with the formatted reason.
func NewInvalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// StatusConflictError reports a transition attempted from the wrong state.
// Actual is the state the record was found in.
type StatusConflictError struct {
	Kind     EntityKind
	ID       string
	Actual   Status
	Expected []Status
	Target   Status
}

func (e *StatusConflictError) Error() string {
	if e.Actual == e.Target {
		return fmt.Sprintf("%s is already %s", e.Kind, e.Actual)
	}
	expected := make([]string, 0, len(e.Expected))
	for _, s := range e.Expected {
		expected = append(expected, string(s))
	}
	return fmt.Sprintf("%s status is currently %q; only %s can move to %s",
		e.Kind, e.Actual, strings.Join(expected, " or "), e.Target)
}

func (e *StatusConflictError) Is(target error) bool { return target == ErrConflict }
