// Package gpa implements the grade-point aggregation engine: the fixed
// letter-grade scale, per-course grade points, and credit-weighted GPA over
// a list of courses. Every function is pure and side-effect free; the
// package owns no data and never touches storage.
package gpa
