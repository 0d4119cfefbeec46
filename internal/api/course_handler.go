package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/gradebook-api/internal/api/shared"
	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/domain/gpa"
	"github.com/phrazzld/gradebook-api/internal/platform/logger"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// CreateCourseRequest represents the request body for creating a new course.
// GradeValue is a pointer so that an F (0.0) survives the required check.
type CreateCourseRequest struct {
	Name        string   `json:"name"         validate:"required,min=1"`
	CreditHours float64  `json:"credit_hours" validate:"required,gte=0.5,lte=10"`
	GradeValue  *float64 `json:"grade_value"  validate:"required"`
	SemesterID  int64    `json:"semester_id"  validate:"omitempty,gt=0"`
}

// CourseResponse represents the response data for a course
type CourseResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CreditHours float64 `json:"credit_hours"`
	GradeValue  float64 `json:"grade_value"`
	GradePoints float64 `json:"grade_points"`
	SemesterID  int64   `json:"semester_id"`
	OwnerID     int64   `json:"owner_id"`
}

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	courseStore store.CourseStore
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseStore store.CourseStore, log *slog.Logger) *CourseHandler {
	if log == nil {
		log = slog.Default()
	}

	return &CourseHandler{
		courseStore: courseStore,
		validator:   validator.New(),
		logger:      log.With(slog.String("component", "course_handler")),
	}
}

// ListCourses handles GET /api/courses requests
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseStore.GetCourses(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list courses", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, coursesToResponse(courses))
}

// CreateCourse handles POST /api/courses requests.
// The grade value must be one of the fixed scale values; grade points are
// computed here and persisted by the store as supplied.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCourseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("course validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	gradeValue := *req.GradeValue
	if !gpa.IsScaleValue(gradeValue) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid grade_value: value is not one of the allowed grade options")
		return
	}

	course, err := h.courseStore.CreateCourse(r.Context(), store.CourseParams{
		Name:        req.Name,
		CreditHours: req.CreditHours,
		GradeValue:  gradeValue,
		GradePoints: gpa.GradePoints(req.CreditHours, gradeValue),
		SemesterID:  req.SemesterID,
	})
	if err != nil {
		// A missing semester on create is a bad reference in the request
		// body, not a 404 on the course route.
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Semester does not exist")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("course created",
		slog.Int64("course_id", course.ID),
		slog.Int64("semester_id", course.SemesterID))
	shared.RespondWithJSON(w, r, http.StatusCreated, courseToResponse(course))
}

// DeleteCourse handles DELETE /api/courses/{id} requests
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid course ID")
		return
	}

	if err := h.courseStore.DeleteCourse(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Course deleted"})
}

// DeleteAllCourses handles DELETE /api/courses requests
func (h *CourseHandler) DeleteAllCourses(w http.ResponseWriter, r *http.Request) {
	if err := h.courseStore.DeleteAllCourses(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete courses", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "All courses deleted"})
}

// courseToResponse converts a domain.Course to a CourseResponse
func courseToResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		CreditHours: course.CreditHours,
		GradeValue:  course.GradeValue,
		GradePoints: course.GradePoints,
		SemesterID:  course.SemesterID,
		OwnerID:     course.OwnerID,
	}
}

// coursesToResponse converts a course list, keeping an empty JSON array
// (not null) for the empty case.
func coursesToResponse(courses []domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, courseToResponse(&courses[i]))
	}
	return out
}
