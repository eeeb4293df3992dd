package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// AddCourse inserts a new course.
func (s *Store) AddCourse(ctx context.Context, c records.Course) (Result, error) {
	return s.exec(ctx, "add course", `
		INSERT INTO courses (`+courseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.CourseID, c.Name, c.Department, c.Credits, c.Professor, c.Semester)
}

// GetCourse retrieves a course by id.
func (s *Store) GetCourse(ctx context.Context, courseID string) (records.Course, bool, error) {
	c, found, err := queryOne(ctx, s.db, scanCourse, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE course_id = ?
	`, courseID)
	if err != nil {
		return records.Course{}, false, fmt.Errorf("get course: %w", err)
	}
	return c, found, nil
}

// ListCourses returns every course ordered by name.
func (s *Store) ListCourses(ctx context.Context) ([]records.Course, error) {
	courses, err := queryAll(ctx, s.db, scanCourse, `
		SELECT `+courseColumns+`
		FROM courses
		ORDER BY name ASC, course_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// DeleteCourse removes a course. Enrollment rows are left in place.
func (s *Store) DeleteCourse(ctx context.Context, courseID string) (Result, error) {
	return s.exec(ctx, "delete course", `DELETE FROM courses WHERE course_id = ?`, courseID)
}
