package store

import (
	"context"

	"github.com/phrazzld/gradebook-api/internal/domain"
)

// SemesterStore defines the interface for semester persistence.
//
// All operations complete synchronously; the context parameter exists to
// match the store-interface idiom and to allow future I/O-backed
// implementations, not to express any concurrency contract.
type SemesterStore interface {
	// CreateSemester assigns the next semester ID, stores the record, and
	// returns it. Returns ErrInvalidEntity (wrapping the validation detail)
	// if the name is empty.
	CreateSemester(ctx context.Context, name string) (*domain.Semester, error)

	// GetSemesters returns all stored semesters. The slice is in insertion
	// order, but callers must treat it as a set: the ordering is not part
	// of the contract and may not survive deletions in every implementation.
	GetSemesters(ctx context.Context) ([]domain.Semester, error)

	// GetSemesterByID retrieves a semester by ID.
	// Returns ErrSemesterNotFound if it does not exist.
	GetSemesterByID(ctx context.Context, id int64) (*domain.Semester, error)

	// DeleteSemester removes a semester. Every course referencing it is
	// reassigned to the default semester before the record is removed, as
	// one effective unit: no course is ever left referencing a nonexistent
	// semester, and a reassignment failure leaves the semester in place.
	//
	// Returns ErrDefaultSemesterProtected for the reserved default semester
	// and ErrSemesterNotFound if the ID does not exist.
	DeleteSemester(ctx context.Context, id int64) error
}
