package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a word payload that is not a string.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSnapshotFormat marks a snapshot whose shape cannot be restored.
	ErrSnapshotFormat = errors.New("invalid snapshot format")
)

// Error attaches detail to one of the sentinel errors above.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Errorf(sentinel error, format string, args ...any) *Error {
	return &Error{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}
