// Package domain contains the core business entities of the application:
// Course and Semester records and their validation rules, independent of
// any specific infrastructure or delivery mechanism. The grade-point
// arithmetic over these entities lives in the gpa subpackage.
package domain
