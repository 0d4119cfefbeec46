package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// Ensure Store implements store.SemesterStore interface
var _ store.SemesterStore = (*Store)(nil)

// CreateSemester implements store.SemesterStore.CreateSemester
func (s *Store) CreateSemester(ctx context.Context, name string) (*domain.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester, err := domain.NewSemester(s.nextSemesterID, name)
	if err != nil {
		s.logger.Warn("semester validation failed during create",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	s.nextSemesterID++

	s.semesters[semester.ID] = *semester
	s.semesterOrder = append(s.semesterOrder, semester.ID)

	s.logger.Debug("semester created",
		slog.Int64("semester_id", semester.ID),
		slog.String("name", semester.Name))

	return semester, nil
}

// GetSemesters implements store.SemesterStore.GetSemesters
func (s *Store) GetSemesters(ctx context.Context) ([]domain.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semesters := make([]domain.Semester, 0, len(s.semesterOrder))
	for _, id := range s.semesterOrder {
		semesters = append(semesters, s.semesters[id])
	}

	return semesters, nil
}

// GetSemesterByID implements store.SemesterStore.GetSemesterByID
func (s *Store) GetSemesterByID(ctx context.Context, id int64) (*domain.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester, ok := s.semesters[id]
	if !ok {
		return nil, store.ErrSemesterNotFound
	}

	return &semester, nil
}

// DeleteSemester implements store.SemesterStore.DeleteSemester
//
// The default semester is protected here, not just at the API boundary, so
// the "semester 1 always exists" invariant holds regardless of caller.
// Reassignment and removal happen under a single lock hold: no caller can
// observe a deleted semester that still has courses attached to it.
func (s *Store) DeleteSemester(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == domain.DefaultSemesterID {
		s.logger.Warn("attempted to delete the default semester")
		return store.ErrDefaultSemesterProtected
	}

	if _, ok := s.semesters[id]; !ok {
		return store.ErrSemesterNotFound
	}

	// Cascade: reassign every course of this semester to the default
	// semester before removing the record, so no course ever references a
	// nonexistent semester.
	reassigned := 0
	for courseID, course := range s.courses {
		if course.SemesterID == id {
			course.SemesterID = domain.DefaultSemesterID
			s.courses[courseID] = course
			reassigned++
		}
	}

	delete(s.semesters, id)
	s.semesterOrder = removeFromOrder(s.semesterOrder, id)

	s.logger.Debug("semester deleted",
		slog.Int64("semester_id", id),
		slog.Int("courses_reassigned", reassigned))

	return nil
}
