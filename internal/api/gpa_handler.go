package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/gradebook-api/internal/api/shared"
	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/domain/gpa"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// GPAResponse represents the aggregate metrics for a set of courses plus the
// letter-grade classification of the average.
type GPAResponse struct {
	GPA              float64 `json:"gpa"`
	TotalCreditHours float64 `json:"total_credit_hours"`
	TotalGradePoints float64 `json:"total_grade_points"`
	LetterGrade      string  `json:"letter_grade"`
}

// GPAHandler handles aggregation-related HTTP requests. It is a thin
// adapter: the store supplies the course list and the gpa package does the
// arithmetic.
type GPAHandler struct {
	courseStore   store.CourseStore
	semesterStore store.SemesterStore
	logger        *slog.Logger
}

// NewGPAHandler creates a new GPAHandler
func NewGPAHandler(
	courseStore store.CourseStore,
	semesterStore store.SemesterStore,
	log *slog.Logger,
) *GPAHandler {
	if log == nil {
		log = slog.Default()
	}

	return &GPAHandler{
		courseStore:   courseStore,
		semesterStore: semesterStore,
		logger:        log.With(slog.String("component", "gpa_handler")),
	}
}

// GetGPA handles GET /api/gpa requests: the cumulative GPA over every
// stored course. An empty store yields the zero result, not an error.
func (h *GPAHandler) GetGPA(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseStore.GetCourses(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to compute GPA", err)
		return
	}

	h.respondWithAggregate(w, r, courses)
}

// GetSemesterGPA handles GET /api/semesters/{semesterID}/gpa requests.
// Unlike the course-list filter, this endpoint 404s for a semester that
// does not exist: a GPA for a nonexistent grouping is meaningless.
func (h *GPAHandler) GetSemesterGPA(w http.ResponseWriter, r *http.Request) {
	semesterID, err := strconv.ParseInt(chi.URLParam(r, "semesterID"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid semester ID")
		return
	}

	if _, err := h.semesterStore.GetSemesterByID(r.Context(), semesterID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	courses, err := h.courseStore.GetCoursesBySemesterID(r.Context(), semesterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to compute GPA", err)
		return
	}

	h.respondWithAggregate(w, r, courses)
}

// GetGradeScale handles GET /api/grades requests: the fixed letter-grade
// scale in descending order, as rendered by grade pickers.
func (h *GPAHandler) GetGradeScale(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, gpa.Scale())
}

func (h *GPAHandler) respondWithAggregate(
	w http.ResponseWriter,
	r *http.Request,
	courses []domain.Course,
) {
	result, err := gpa.Aggregate(courses)
	if err != nil {
		// Stored courses are validated at creation, so an aggregation
		// failure means the store holds data it should not.
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		shared.RespondWithErrorAndLog(w, r, status, "Failed to compute GPA", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GPAResponse{
		GPA:              result.GPA,
		TotalCreditHours: result.TotalCreditHours,
		TotalGradePoints: result.TotalGradePoints,
		LetterGrade:      gpa.LetterGradeForGPA(result.GPA),
	})
}
