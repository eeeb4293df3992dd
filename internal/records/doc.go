// Package records defines the academic record kinds persisted by the registrar:
// students, courses, faculty, departments, events and enrollments.
//
// Records are plain values. Identity is caller-assigned (StudentID, CourseID, ...)
// and dates are carried as YYYY-MM-DD text, matching the persisted layout.
//
// The Validate* helpers are used by front ends (menu, cli) before a record is
// handed to the store. The store itself never checks ranges or date formats.
package records
