package domain

import "errors"

// Semester-specific validation errors
var (
	// ErrSemesterIDInvalid is returned when a semester ID is zero or negative.
	ErrSemesterIDInvalid = errors.New("semester ID must be positive")

	// ErrSemesterNameEmpty is returned when a semester's name is empty.
	ErrSemesterNameEmpty = errors.New("semester name cannot be empty")
)

const (
	// DefaultSemesterID is the reserved identity of the "Unsorted" semester.
	// The store creates it at initialization and it exists for the lifetime
	// of the process; courses whose semester is deleted are reassigned here.
	DefaultSemesterID int64 = 1

	// DefaultSemesterName is the display name of the reserved semester.
	DefaultSemesterName = "Unsorted"

	// PlaceholderOwnerID stands in for a real user identity. The system has
	// no authentication, so every record belongs to this fixed owner.
	PlaceholderOwnerID int64 = 1
)

// Semester is a named grouping of courses. Identity is assigned by the
// store, starting at 1 with the reserved default semester.
type Semester struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// NewSemester creates a Semester with the given store-assigned ID and name.
// Returns an error if validation fails.
func NewSemester(id int64, name string) (*Semester, error) {
	semester := &Semester{
		ID:      id,
		Name:    name,
		OwnerID: PlaceholderOwnerID,
	}

	if err := semester.Validate(); err != nil {
		return nil, err
	}

	return semester, nil
}

// Validate checks if the Semester has valid data.
func (s *Semester) Validate() error {
	if s.ID <= 0 {
		return ErrSemesterIDInvalid
	}

	if s.Name == "" {
		return ErrSemesterNameEmpty
	}

	return nil
}

// IsDefault reports whether this is the reserved "Unsorted" semester.
func (s *Semester) IsDefault() bool {
	return s.ID == DefaultSemesterID
}
