package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// Ensure Store implements store.CourseStore interface
var _ store.CourseStore = (*Store)(nil)

// CreateCourse implements store.CourseStore.CreateCourse
func (s *Store) CreateCourse(ctx context.Context, params store.CourseParams) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semesterID := params.SemesterID
	if semesterID == 0 {
		semesterID = domain.DefaultSemesterID
	}

	// Referential integrity: a course may only be attached to a semester
	// that exists.
	if _, ok := s.semesters[semesterID]; !ok {
		s.logger.Warn("course creation referenced missing semester",
			slog.Int64("semester_id", semesterID))
		return nil, store.ErrSemesterNotFound
	}

	course, err := domain.NewCourse(
		s.nextCourseID,
		params.Name,
		params.CreditHours,
		params.GradeValue,
		params.GradePoints,
		semesterID,
	)
	if err != nil {
		s.logger.Warn("course validation failed during create",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	s.nextCourseID++

	s.courses[course.ID] = *course
	s.courseOrder = append(s.courseOrder, course.ID)

	s.logger.Debug("course created",
		slog.Int64("course_id", course.ID),
		slog.Int64("semester_id", course.SemesterID),
		slog.String("name", course.Name))

	return course, nil
}

// GetCourses implements store.CourseStore.GetCourses
func (s *Store) GetCourses(ctx context.Context) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]domain.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		courses = append(courses, s.courses[id])
	}

	return courses, nil
}

// GetCoursesBySemesterID implements store.CourseStore.GetCoursesBySemesterID
func (s *Store) GetCoursesBySemesterID(ctx context.Context, semesterID int64) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]domain.Course, 0)
	for _, id := range s.courseOrder {
		if course := s.courses[id]; course.SemesterID == semesterID {
			courses = append(courses, course)
		}
	}

	return courses, nil
}

// GetCourseByID implements store.CourseStore.GetCourseByID
func (s *Store) GetCourseByID(ctx context.Context, id int64) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, store.ErrCourseNotFound
	}

	return &course, nil
}

// DeleteCourse implements store.CourseStore.DeleteCourse
func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return store.ErrCourseNotFound
	}

	delete(s.courses, id)
	s.courseOrder = removeFromOrder(s.courseOrder, id)

	s.logger.Debug("course deleted", slog.Int64("course_id", id))

	return nil
}

// DeleteAllCourses implements store.CourseStore.DeleteAllCourses
//
// The course ID counter is not reset: IDs are never reused, even after a
// bulk clear.
func (s *Store) DeleteAllCourses(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := len(s.courses)
	s.courses = make(map[int64]domain.Course)
	s.courseOrder = nil

	s.logger.Debug("all courses deleted", slog.Int("count", cleared))

	return nil
}
