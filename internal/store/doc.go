// Package store defines interfaces for record persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic: handlers program against SemesterStore and
// CourseStore without knowing that the only implementation keeps records
// in process memory.
package store
