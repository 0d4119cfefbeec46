package store

import (
	"context"

	"github.com/phrazzld/gradebook-api/internal/domain"
)

// CourseParams carries the caller-supplied fields for a new course. The
// store assigns identity and owner; GradePoints is persisted as supplied
// (the gpa package computes it at the boundary). A zero SemesterID selects
// the default semester.
type CourseParams struct {
	Name        string
	CreditHours float64
	GradeValue  float64
	GradePoints float64
	SemesterID  int64
}

// CourseStore defines the interface for course persistence.
//
// As with SemesterStore, every operation completes synchronously and the
// context parameter carries no concurrency semantics.
type CourseStore interface {
	// CreateCourse assigns the next course ID, attaches the given or
	// default semester ID, stores the record, and returns it.
	// Returns ErrSemesterNotFound if the referenced semester does not
	// exist, and ErrInvalidEntity if the fields fail domain validation.
	CreateCourse(ctx context.Context, params CourseParams) (*domain.Course, error)

	// GetCourses returns all stored courses in insertion order.
	GetCourses(ctx context.Context) ([]domain.Course, error)

	// GetCoursesBySemesterID returns the courses whose semester ID equals
	// the given ID. An empty result is not an error.
	GetCoursesBySemesterID(ctx context.Context, semesterID int64) ([]domain.Course, error)

	// GetCourseByID retrieves a course by ID.
	// Returns ErrCourseNotFound if it does not exist.
	GetCourseByID(ctx context.Context, id int64) (*domain.Course, error)

	// DeleteCourse removes a course by ID.
	// Returns ErrCourseNotFound if it does not exist.
	DeleteCourse(ctx context.Context, id int64) error

	// DeleteAllCourses removes every course. Semesters are untouched, and
	// course IDs are never reused afterwards.
	DeleteAllCourses(ctx context.Context) error
}
