package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/gradebook-api/internal/api/shared"
	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/platform/logger"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// CreateSemesterRequest represents the request body for creating a new semester
type CreateSemesterRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// SemesterResponse represents the response data for a semester
type SemesterResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// SemesterHandler handles semester-related HTTP requests
type SemesterHandler struct {
	semesterStore store.SemesterStore
	courseStore   store.CourseStore
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewSemesterHandler creates a new SemesterHandler
func NewSemesterHandler(
	semesterStore store.SemesterStore,
	courseStore store.CourseStore,
	log *slog.Logger,
) *SemesterHandler {
	if log == nil {
		log = slog.Default()
	}

	return &SemesterHandler{
		semesterStore: semesterStore,
		courseStore:   courseStore,
		validator:     validator.New(),
		logger:        log.With(slog.String("component", "semester_handler")),
	}
}

// ListSemesters handles GET /api/semesters requests
func (h *SemesterHandler) ListSemesters(w http.ResponseWriter, r *http.Request) {
	semesters, err := h.semesterStore.GetSemesters(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list semesters", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, semestersToResponse(semesters))
}

// CreateSemester handles POST /api/semesters requests
func (h *SemesterHandler) CreateSemester(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateSemesterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("semester validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	semester, err := h.semesterStore.CreateSemester(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("semester created", slog.Int64("semester_id", semester.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, semesterToResponse(semester))
}

// GetSemester handles GET /api/semesters/{semesterID} requests
func (h *SemesterHandler) GetSemester(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "semesterID"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid semester ID")
		return
	}

	semester, err := h.semesterStore.GetSemesterByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, semesterToResponse(semester))
}

// DeleteSemester handles DELETE /api/semesters/{semesterID} requests.
// The default semester is rejected here with 400 before the store is
// consulted; the store enforces the same guard for any other caller.
func (h *SemesterHandler) DeleteSemester(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "semesterID"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid semester ID")
		return
	}

	if id == domain.DefaultSemesterID {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"The default semester cannot be deleted")
		return
	}

	if err := h.semesterStore.DeleteSemester(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Semester deleted"})
}

// ListSemesterCourses handles GET /api/semesters/{semesterID}/courses requests.
// An unknown semester yields an empty list, matching the filter semantics of
// the store; the ID only has to be numeric.
func (h *SemesterHandler) ListSemesterCourses(w http.ResponseWriter, r *http.Request) {
	semesterID, err := strconv.ParseInt(chi.URLParam(r, "semesterID"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid semester ID")
		return
	}

	courses, err := h.courseStore.GetCoursesBySemesterID(r.Context(), semesterID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list courses", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, coursesToResponse(courses))
}

// semesterToResponse converts a domain.Semester to a SemesterResponse
func semesterToResponse(semester *domain.Semester) SemesterResponse {
	return SemesterResponse{
		ID:      semester.ID,
		Name:    semester.Name,
		OwnerID: semester.OwnerID,
	}
}

func semestersToResponse(semesters []domain.Semester) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, semesterToResponse(&semesters[i]))
	}
	return out
}
