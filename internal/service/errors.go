package service

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NotFoundError is returned by Update when no record has the requested id.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError is returned when the store rejects a write because the id
// is already taken.
type ConflictError struct {
	Kind   string
	ID     int
	nested error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Kind)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Unwrap() error {
	return e.nested
}
