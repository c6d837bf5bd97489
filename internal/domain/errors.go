package domain

import (
	"errors"
)

// ValidationError reports malformed client input. Handlers answer it with 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var (
	ErrMissingFile     = &ValidationError{Msg: "missing file field"}
	ErrEmptyFilename   = &ValidationError{Msg: "empty filename"}
	ErrInvalidFilename = &ValidationError{Msg: "invalid filename"}
	ErrUnsupportedType = &ValidationError{Msg: "unsupported file type"}
)

// StorageError wraps any failure of the blob store. Its message is the
// provider's message, unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func IsStorageError(err error) bool {
	var sErr *StorageError
	return errors.As(err, &sErr)
}
