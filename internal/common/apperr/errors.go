package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced record as absent. Controllers translate it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field messages for malformed input (400).
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

// StorageError wraps a store-layer failure with the operation that hit it (500).
// The original error stays attached for diagnostics.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
