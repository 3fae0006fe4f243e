package port

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Errors produced by the core are marked with exactly one of
// these; anything unmarked is treated as a storage or internal failure.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("conflict")
)

// NewValidationError returns an error of kind ErrValidation whose hint is
// safe to show to the client.
func NewValidationError(msg string) error {
	return newKind(msg, ErrValidation)
}

// NewNotFoundError returns an error of kind ErrNotFound.
func NewNotFoundError(msg string) error {
	return newKind(msg, ErrNotFound)
}

// NewUnauthenticatedError returns an error of kind ErrUnauthenticated. The
// message must not reveal which credential was wrong.
func NewUnauthenticatedError(msg string) error {
	return newKind(msg, ErrUnauthenticated)
}

// NewConflictError returns an error of kind ErrConflict.
func NewConflictError(msg string) error {
	return newKind(msg, ErrConflict)
}

func newKind(msg string, kind error) error {
	return errors.WithHint(errors.Mark(errors.New(msg), kind), msg)
}

// UserMessage returns the client-facing message attached to err, or the
// empty string when err carries none.
func UserMessage(err error) string {
	return errors.FlattenHints(err)
}

// IsValidation reports whether err is of kind ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is of kind ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnauthenticated reports whether err is of kind ErrUnauthenticated.
func IsUnauthenticated(err error) bool { return errors.Is(err, ErrUnauthenticated) }

// IsConflict reports whether err is of kind ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
