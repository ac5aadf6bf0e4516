package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets an id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBackend matches every *BackendError.
	ErrBackend = errors.New("backend failure")

	// ErrPartial matches every *PartialError.
	ErrPartial = errors.New("partially applied")
)

// BackendError reports a failure of the underlying store: connectivity, constraint violations,
// scanning, or a cancelled context.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

// PartialError reports a multi-step operation of which only the first steps took effect. For contact
// creation the contact row with ContactID exists, but Step failed and left it without metadata.
type PartialError struct {
	ContactID int64
	Step      string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("contact %d created, but %s failed: %v", e.ContactID, e.Step, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

func (e *PartialError) Is(target error) bool { return target == ErrPartial }

func backendErr(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
