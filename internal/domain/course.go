package domain

import "errors"

// Course-specific validation errors
var (
	// ErrCourseIDInvalid is returned when a course ID is zero or negative.
	ErrCourseIDInvalid = errors.New("course ID must be positive")

	// ErrCourseNameEmpty is returned when a course's name is empty.
	ErrCourseNameEmpty = errors.New("course name cannot be empty")

	// ErrCourseSemesterIDInvalid is returned when a course's semester ID is
	// zero or negative.
	ErrCourseSemesterIDInvalid = errors.New("course semester ID must be positive")
)

// Course represents a single graded course record. CreditHours and
// GradeValue are range-checked at the API boundary, not here; GradePoints is
// computed by the gpa package at creation time and persisted as supplied.
type Course struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CreditHours float64 `json:"credit_hours"`
	GradeValue  float64 `json:"grade_value"`
	GradePoints float64 `json:"grade_points"`
	SemesterID  int64   `json:"semester_id"`
	OwnerID     int64   `json:"owner_id"`
}

// NewCourse creates a Course with the given store-assigned ID.
// Returns an error if validation fails.
func NewCourse(
	id int64,
	name string,
	creditHours, gradeValue, gradePoints float64,
	semesterID int64,
) (*Course, error) {
	course := &Course{
		ID:          id,
		Name:        name,
		CreditHours: creditHours,
		GradeValue:  gradeValue,
		GradePoints: gradePoints,
		SemesterID:  semesterID,
		OwnerID:     PlaceholderOwnerID,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if c.ID <= 0 {
		return ErrCourseIDInvalid
	}

	if c.Name == "" {
		return ErrCourseNameEmpty
	}

	if c.SemesterID <= 0 {
		return ErrCourseSemesterIDInvalid
	}

	return nil
}
