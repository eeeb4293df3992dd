// Package store provides SQLite-backed durable storage for academic records.
//
// The store owns six relations:
//   - students, faculty: caller-assigned id, email UNIQUE
//   - courses, departments, events: caller-assigned id
//   - enrollments: (student_id, course_id) composite key linking students to courses
//
// # Outcomes
//
// Mutating operations return a Result alongside an error. Constraint violations
// (duplicate id, duplicate email, duplicate enrollment pair) and missing rows are
// reported through Result, never through the error. A non-nil error means the
// storage layer itself failed and the caller should stop.
//
// # Referential integrity
//
// enrollments declares foreign keys to students and courses, but foreign key
// enforcement is left off. Enrolling against unknown ids succeeds, and deleting
// a student or course leaves its enrollment rows in place. Callers that care
// check existence with GetStudent/GetCourse first.
//
// # Ordering
//
// List queries order by name (events by date, newest first) with the id as a
// tie-breaker so results are stable across runs. Join queries return rows in
// enrollment insertion order.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=OFF
package store
