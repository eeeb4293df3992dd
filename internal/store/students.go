package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// AddStudent inserts a new student.
// Returns a conflict Result if the id or email is already taken.
func (s *Store) AddStudent(ctx context.Context, st records.Student) (Result, error) {
	return s.exec(ctx, "add student", `
		INSERT INTO students (`+studentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, st.StudentID, st.Name, st.Email, st.Major, st.Year, st.EnrollmentDate)
}

// GetStudent retrieves a student by id.
func (s *Store) GetStudent(ctx context.Context, studentID string) (records.Student, bool, error) {
	st, found, err := queryOne(ctx, s.db, scanStudent, `
		SELECT `+studentColumns+`
		FROM students
		WHERE student_id = ?
	`, studentID)
	if err != nil {
		return records.Student{}, false, fmt.Errorf("get student: %w", err)
	}
	return st, found, nil
}

// ListStudents returns every student ordered by name.
func (s *Store) ListStudents(ctx context.Context) ([]records.Student, error) {
	students, err := queryAll(ctx, s.db, scanStudent, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY name ASC, student_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces every mutable field of the student keyed by
// st.StudentID. Returns StatusNotFound for an unknown id and a conflict if the
// new email belongs to a different student.
func (s *Store) UpdateStudent(ctx context.Context, st records.Student) (Result, error) {
	return s.exec(ctx, "update student", `
		UPDATE students
		SET name = ?, email = ?, major = ?, year = ?, enrollment_date = ?
		WHERE student_id = ?
	`, st.Name, st.Email, st.Major, st.Year, st.EnrollmentDate, st.StudentID)
}

// DeleteStudent removes a student. Enrollment rows are left in place.
func (s *Store) DeleteStudent(ctx context.Context, studentID string) (Result, error) {
	return s.exec(ctx, "delete student", `DELETE FROM students WHERE student_id = ?`, studentID)
}
