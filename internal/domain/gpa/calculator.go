package gpa

import (
	"fmt"
	"math"

	"github.com/phrazzld/gradebook-api/internal/domain"
)

// AggregateResult holds the derived metrics for a list of courses. It is a
// value, not an entity: it has no identity and is recomputed on every call.
type AggregateResult struct {
	GPA              float64 `json:"gpa"`
	TotalCreditHours float64 `json:"total_credit_hours"`
	TotalGradePoints float64 `json:"total_grade_points"`
}

// GradePoints returns the grade points earned by a single course: credit
// hours multiplied by grade value. No validation or clamping is applied;
// out-of-range inputs pass through, and range checks belong to the caller.
func GradePoints(creditHours, gradeValue float64) float64 {
	return creditHours * gradeValue
}

// Aggregate computes the credit-weighted GPA over the given courses.
//
// An empty input is not an error: it yields the zero-identity result
// {0, 0, 0}. Otherwise the result sums credit hours and grade points across
// all courses and divides; summation is order-independent up to
// floating-point rounding.
//
// Courses with non-finite or non-positive credit hours are rejected with a
// wrapped domain.ErrValidation rather than silently producing NaN or Inf.
func Aggregate(courses []domain.Course) (AggregateResult, error) {
	if len(courses) == 0 {
		return AggregateResult{}, nil
	}

	var totalCreditHours, totalGradePoints float64
	for _, course := range courses {
		if math.IsNaN(course.CreditHours) || math.IsInf(course.CreditHours, 0) ||
			course.CreditHours <= 0 {
			return AggregateResult{}, fmt.Errorf(
				"%w: course %q has non-positive or non-finite credit hours (%v)",
				domain.ErrValidation, course.Name, course.CreditHours)
		}

		if math.IsNaN(course.GradePoints) || math.IsInf(course.GradePoints, 0) {
			return AggregateResult{}, fmt.Errorf(
				"%w: course %q has non-finite grade points (%v)",
				domain.ErrValidation, course.Name, course.GradePoints)
		}

		totalCreditHours += course.CreditHours
		totalGradePoints += course.GradePoints
	}

	return AggregateResult{
		GPA:              totalGradePoints / totalCreditHours,
		TotalCreditHours: totalCreditHours,
		TotalGradePoints: totalGradePoints,
	}, nil
}
