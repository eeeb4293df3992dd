package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/registrar/internal/records"
)

// EnrollStudent records that a student takes a course. The grade starts empty.
//
// Returns a conflict Result if the pair is already enrolled. The student and
// course ids are not checked against their tables.
func (s *Store) EnrollStudent(ctx context.Context, studentID, courseID, enrollmentDate string) (Result, error) {
	return s.AddEnrollment(ctx, records.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: enrollmentDate,
	})
}

// AddEnrollment inserts a full enrollment row, including an optional grade.
// Conflicts are reported the same way as EnrollStudent.
func (s *Store) AddEnrollment(ctx context.Context, en records.Enrollment) (Result, error) {
	return s.exec(ctx, "enroll student", `
		INSERT INTO enrollments (student_id, course_id, enrollment_date, grade)
		VALUES (?, ?, ?, ?)
	`, en.StudentID, en.CourseID, en.EnrollmentDate, nullString(en.Grade))
}

// GetEnrollment retrieves the enrollment row for a (student, course) pair.
func (s *Store) GetEnrollment(ctx context.Context, studentID, courseID string) (records.Enrollment, bool, error) {
	en, found, err := queryOne(ctx, s.db, scanEnrollment, `
		SELECT `+enrollmentColumns+`
		FROM enrollments
		WHERE student_id = ? AND course_id = ?
	`, studentID, courseID)
	if err != nil {
		return records.Enrollment{}, false, fmt.Errorf("get enrollment: %w", err)
	}
	return en, found, nil
}

// StudentCourses returns the courses a student is enrolled in, in enrollment
// order. Enrollments whose course no longer exists are skipped by the join.
func (s *Store) StudentCourses(ctx context.Context, studentID string) ([]records.Course, error) {
	courses, err := queryAll(ctx, s.db, scanCourse, `
		SELECT `+qualify("c", courseColumns)+`
		FROM courses c
		JOIN enrollments e ON c.course_id = e.course_id
		WHERE e.student_id = ?
		ORDER BY e.rowid ASC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("student courses: %w", err)
	}
	return courses, nil
}

// CourseStudents returns the students enrolled in a course, in enrollment order.
func (s *Store) CourseStudents(ctx context.Context, courseID string) ([]records.Student, error) {
	students, err := queryAll(ctx, s.db, scanStudent, `
		SELECT `+qualify("s", studentColumns)+`
		FROM students s
		JOIN enrollments e ON s.student_id = e.student_id
		WHERE e.course_id = ?
		ORDER BY e.rowid ASC
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("course students: %w", err)
	}
	return students, nil
}

// qualify prefixes each column in a comma-separated list with a table alias.
func qualify(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
