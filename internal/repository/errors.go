package repository

import "errors"

// ErrInvalidType is returned when a repository receives a resource of an
// unexpected concrete type.
var ErrInvalidType = errors.New("invalid resource type")

// ValidationError reports a missing or empty required field supplied by the
// caller. It always maps to a client error at the HTTP layer.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// StorageError wraps a failure of the underlying store. The message is
// surfaced to the caller as-is and always maps to a server error.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
