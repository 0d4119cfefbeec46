package memory

import (
	"log/slog"
	"sync"

	"github.com/phrazzld/gradebook-api/internal/domain"
)

// Store is the in-memory record store. It owns the canonical Semester and
// Course collections and is the sole authority for identity assignment and
// referential integrity between them.
//
// Construct it once at process start with New and pass it by handle to the
// request handlers; there is no package-level instance.
type Store struct {
	mu sync.Mutex

	semesters     map[int64]domain.Semester
	semesterOrder []int64

	courses     map[int64]domain.Course
	courseOrder []int64

	// Monotonically increasing counters. IDs are never reused, even after
	// deletion.
	nextSemesterID int64
	nextCourseID   int64

	logger *slog.Logger
}

// New creates a Store seeded with the reserved default semester. The
// default semester exists before any other operation is observable.
// If logger is nil, a default logger will be used.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		semesters:      make(map[int64]domain.Semester),
		courses:        make(map[int64]domain.Course),
		nextSemesterID: 1,
		nextCourseID:   1,
		logger:         logger.With(slog.String("component", "memory_store")),
	}

	defaultSemester := domain.Semester{
		ID:      s.nextSemesterID,
		Name:    domain.DefaultSemesterName,
		OwnerID: domain.PlaceholderOwnerID,
	}
	s.nextSemesterID++

	s.semesters[defaultSemester.ID] = defaultSemester
	s.semesterOrder = append(s.semesterOrder, defaultSemester.ID)

	return s
}

// removeFromOrder drops id from an insertion-order slice.
func removeFromOrder(order []int64, id int64) []int64 {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
