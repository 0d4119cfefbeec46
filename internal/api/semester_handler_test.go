package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/gradebook-api/internal/domain"
	"github.com/phrazzld/gradebook-api/internal/platform/memory"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// newSemesterTestRouter wires a SemesterHandler over a fresh memory store.
func newSemesterTestRouter(t *testing.T) (*chi.Mux, *memory.Store) {
	t.Helper()

	s := memory.New(nil)
	h := NewSemesterHandler(s, s, nil)

	r := chi.NewRouter()
	r.Get("/api/semesters", h.ListSemesters)
	r.Post("/api/semesters", h.CreateSemester)
	r.Get("/api/semesters/{semesterID}", h.GetSemester)
	r.Delete("/api/semesters/{semesterID}", h.DeleteSemester)
	r.Get("/api/semesters/{semesterID}/courses", h.ListSemesterCourses)

	return r, s
}

func TestListSemesters_DefaultOnly(t *testing.T) {
	router, _ := newSemesterTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/semesters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var semesters []SemesterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &semesters))
	require.Len(t, semesters, 1)
	assert.Equal(t, domain.DefaultSemesterID, semesters[0].ID)
	assert.Equal(t, domain.DefaultSemesterName, semesters[0].Name)
}

func TestCreateSemester(t *testing.T) {
	router, _ := newSemesterTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/semesters", CreateSemesterRequest{Name: "Fall 2024"})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var semester SemesterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &semester))
	assert.Equal(t, int64(2), semester.ID)
	assert.Equal(t, "Fall 2024", semester.Name)

	// Empty name is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/semesters", CreateSemesterRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed body is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/semesters", "nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSemester(t *testing.T) {
	router, _ := newSemesterTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/semesters/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var semester SemesterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &semester))
	assert.Equal(t, domain.DefaultSemesterName, semester.Name)

	w = doJSON(t, router, http.MethodGet, "/api/semesters/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/semesters/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSemester_DefaultRejected(t *testing.T) {
	router, s := newSemesterTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/semesters/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The default semester persists.
	_, err := s.GetSemesterByID(context.Background(), domain.DefaultSemesterID)
	assert.NoError(t, err)
}

func TestDeleteSemester_CascadeVisibleThroughAPI(t *testing.T) {
	router, s := newSemesterTestRouter(t)
	ctx := context.Background()

	fall, err := s.CreateSemester(ctx, "Fall 2024")
	require.NoError(t, err)

	_, err = s.CreateCourse(ctx, store.CourseParams{
		Name: "Calculus I", CreditHours: 3.0, GradeValue: 4.0, GradePoints: 12.0,
		SemesterID: fall.ID,
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodDelete, "/api/semesters/2", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	// The deleted semester's course list is empty...
	w = doJSON(t, router, http.MethodGet, "/api/semesters/2/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// ...and the course now lives in the default semester.
	w = doJSON(t, router, http.MethodGet, "/api/semesters/1/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var courses []CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Calculus I", courses[0].Name)

	// Repeating the delete is a 404.
	w = doJSON(t, router, http.MethodDelete, "/api/semesters/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSemesterCourses_BadID(t *testing.T) {
	router, _ := newSemesterTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/semesters/abc/courses", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
