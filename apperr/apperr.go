// Package apperr defines the error taxonomy shared by the catalog
// services and the HTTP layer: not-found, validation and storage faults.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested entity id does not exist.
var ErrNotFound = errors.New("record not found")

// FieldErrors maps a dotted field path (e.g. "name.en", "images.0") to
// the list of messages for that field.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError carries the per-field error bag for a rejected payload.
type ValidationError struct {
	Fields FieldErrors
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: FieldErrors{}}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// StorageError wraps a file storage failure with the operation and the
// storage key involved.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
