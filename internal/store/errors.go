package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrSemesterNotFound, ErrCourseNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrDefaultSemesterProtected is returned when a caller attempts to
	// delete the reserved default semester. The guard lives in the store
	// itself so the invariant holds regardless of caller.
	ErrDefaultSemesterProtected = errors.New("default semester cannot be deleted")

	// Entity-specific "not found" errors

	// ErrSemesterNotFound indicates that the requested semester does not exist in the store.
	ErrSemesterNotFound = fmt.Errorf("%w: semester", ErrNotFound)

	// ErrCourseNotFound indicates that the requested course does not exist in the store.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
