package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/gradebook-api/internal/domain/gpa"
	"github.com/phrazzld/gradebook-api/internal/platform/memory"
	"github.com/phrazzld/gradebook-api/internal/store"
)

// newGPATestRouter wires a GPAHandler over a fresh memory store.
func newGPATestRouter(t *testing.T) (*chi.Mux, *memory.Store) {
	t.Helper()

	s := memory.New(nil)
	h := NewGPAHandler(s, s, nil)

	r := chi.NewRouter()
	r.Get("/api/gpa", h.GetGPA)
	r.Get("/api/grades", h.GetGradeScale)
	r.Get("/api/semesters/{semesterID}/gpa", h.GetSemesterGPA)

	return r, s
}

func TestGetGPA_EmptyStore(t *testing.T) {
	router, _ := newGPATestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/gpa", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result GPAResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Zero(t, result.GPA)
	assert.Zero(t, result.TotalCreditHours)
	assert.Zero(t, result.TotalGradePoints)
}

func TestGetGPA_SingleCourse(t *testing.T) {
	router, s := newGPATestRouter(t)

	// POST creditHours=3, gradeValue=4.0 stores gradePoints=12.0 and the
	// aggregate over that single course is a 4.0 GPA.
	_, err := s.CreateCourse(context.Background(), store.CourseParams{
		Name:        "Calculus I",
		CreditHours: 3.0,
		GradeValue:  4.0,
		GradePoints: gpa.GradePoints(3.0, 4.0),
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/gpa", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result GPAResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 4.0, result.GPA, 1e-9)
	assert.InDelta(t, 3.0, result.TotalCreditHours, 1e-9)
	assert.InDelta(t, 12.0, result.TotalGradePoints, 1e-9)
	assert.Equal(t, "A/A+", result.LetterGrade)
}

func TestGetSemesterGPA(t *testing.T) {
	router, s := newGPATestRouter(t)
	ctx := context.Background()

	fall, err := s.CreateSemester(ctx, "Fall 2024")
	require.NoError(t, err)

	_, err = s.CreateCourse(ctx, store.CourseParams{
		Name: "Calculus I", CreditHours: 3.0, GradeValue: 4.0, GradePoints: 12.0,
		SemesterID: fall.ID,
	})
	require.NoError(t, err)
	_, err = s.CreateCourse(ctx, store.CourseParams{
		Name: "Chemistry", CreditHours: 4.0, GradeValue: 3.0, GradePoints: 12.0,
		SemesterID: fall.ID,
	})
	require.NoError(t, err)

	// A course outside the semester must not contribute.
	_, err = s.CreateCourse(ctx, store.CourseParams{
		Name: "Writing Seminar", CreditHours: 1.0, GradeValue: 0.0, GradePoints: 0.0,
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/semesters/2/gpa", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var result GPAResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 24.0/7.0, result.GPA, 1e-9)
	assert.InDelta(t, 7.0, result.TotalCreditHours, 1e-9)
	assert.InDelta(t, 24.0, result.TotalGradePoints, 1e-9)
	assert.Equal(t, "B+", result.LetterGrade)
}

func TestGetSemesterGPA_Errors(t *testing.T) {
	router, _ := newGPATestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/semesters/42/gpa", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/semesters/abc/gpa", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGradeScale(t *testing.T) {
	router, _ := newGPATestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/grades", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var options []gpa.GradeOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	require.Len(t, options, 12)
	assert.Equal(t, "A/A+", options[0].Label)
	assert.Equal(t, 4.0, options[0].Value)
	assert.Equal(t, "F", options[11].Label)
	assert.Equal(t, 0.0, options[11].Value)
}
