package gpa

import "math"

// UnknownGrade is returned by LetterForGradeValue when a value matches no
// scale entry.
const UnknownGrade = "Unknown"

// valueEpsilon is the tolerance used when matching a grade value against the
// scale. Scale values are multiples of 0.1, so anything well below that
// spacing is safe; exact float equality is not.
const valueEpsilon = 1e-9

// GradeOption pairs a letter-grade label with its numeric value on the
// 0.0-4.0 scale.
type GradeOption struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// scale is the fixed, ordered grade scale: 12 labels, strictly decreasing
// from 4.0 to 0.0. Process-wide constant; never mutated.
var scale = []GradeOption{
	{Label: "A/A+", Value: 4.0},
	{Label: "A-", Value: 3.7},
	{Label: "B+", Value: 3.3},
	{Label: "B", Value: 3.0},
	{Label: "B-", Value: 2.7},
	{Label: "C+", Value: 2.3},
	{Label: "C", Value: 2.0},
	{Label: "C-", Value: 1.7},
	{Label: "D+", Value: 1.3},
	{Label: "D", Value: 1.0},
	{Label: "D-", Value: 0.7},
	{Label: "F", Value: 0.0},
}

// Scale returns a copy of the fixed grade scale in descending order.
// Callers may not mutate the package's view of the scale, so a fresh slice
// is returned on every call.
func Scale() []GradeOption {
	out := make([]GradeOption, len(scale))
	copy(out, scale)
	return out
}

// IsScaleValue reports whether v equals one of the scale's grade values,
// within valueEpsilon.
func IsScaleValue(v float64) bool {
	return LetterForGradeValue(v) != UnknownGrade
}

// LetterForGradeValue is the exact reverse lookup into the grade scale:
// it returns the label whose value equals v (within valueEpsilon), or
// UnknownGrade when nothing matches. This is deliberately not a fuzzy
// match; 3.05 is UnknownGrade, not "B".
func LetterForGradeValue(v float64) string {
	for _, option := range scale {
		if math.Abs(option.Value-v) < valueEpsilon {
			return option.Label
		}
	}
	return UnknownGrade
}

// LetterGradeForGPA classifies a computed GPA into the nearest letter grade
// at or below it, using the scale's break points as descending thresholds:
// 4.0 and above is "A/A+", at least 3.7 is "A-", and so on down to "F".
// This is a display classification of an average, distinct from the exact
// reverse lookup in LetterForGradeValue.
func LetterGradeForGPA(v float64) string {
	for _, option := range scale {
		if v >= option.Value {
			return option.Label
		}
	}
	// Only reachable for values below 0.0; the scale bottoms out at F.
	return scale[len(scale)-1].Label
}
