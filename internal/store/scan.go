package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// Column lists shared by every query path for a kind. The scan functions below
// read columns in exactly this order.
const (
	studentColumns    = "student_id, name, email, major, year, enrollment_date"
	courseColumns     = "course_id, name, department, credits, professor, semester"
	facultyColumns    = "faculty_id, name, email, department, position, hire_date"
	departmentColumns = "dept_id, name, head, building, contact_email"
	eventColumns      = "event_id, name, description, date, location, organizer, category"
	enrollmentColumns = "student_id, course_id, enrollment_date, grade"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (records.Student, error) {
	var s records.Student
	if err := row.Scan(&s.StudentID, &s.Name, &s.Email, &s.Major, &s.Year, &s.EnrollmentDate); err != nil {
		return records.Student{}, fmt.Errorf("scan student: %w", err)
	}
	return s, nil
}

func scanCourse(row rowScanner) (records.Course, error) {
	var c records.Course
	if err := row.Scan(&c.CourseID, &c.Name, &c.Department, &c.Credits, &c.Professor, &c.Semester); err != nil {
		return records.Course{}, fmt.Errorf("scan course: %w", err)
	}
	return c, nil
}

func scanFaculty(row rowScanner) (records.Faculty, error) {
	var f records.Faculty
	if err := row.Scan(&f.FacultyID, &f.Name, &f.Email, &f.Department, &f.Position, &f.HireDate); err != nil {
		return records.Faculty{}, fmt.Errorf("scan faculty: %w", err)
	}
	return f, nil
}

func scanDepartment(row rowScanner) (records.Department, error) {
	var d records.Department
	if err := row.Scan(&d.DeptID, &d.Name, &d.Head, &d.Building, &d.ContactEmail); err != nil {
		return records.Department{}, fmt.Errorf("scan department: %w", err)
	}
	return d, nil
}

func scanEvent(row rowScanner) (records.Event, error) {
	var e records.Event
	var description sql.NullString
	if err := row.Scan(&e.EventID, &e.Name, &description, &e.Date, &e.Location, &e.Organizer, &e.Category); err != nil {
		return records.Event{}, fmt.Errorf("scan event: %w", err)
	}
	e.Description = description.String
	return e, nil
}

func scanEnrollment(row rowScanner) (records.Enrollment, error) {
	var en records.Enrollment
	var grade sql.NullString
	if err := row.Scan(&en.StudentID, &en.CourseID, &en.EnrollmentDate, &grade); err != nil {
		return records.Enrollment{}, fmt.Errorf("scan enrollment: %w", err)
	}
	en.Grade = grade.String
	return en, nil
}

// nullString maps "" to SQL NULL for optional text columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// queryOne runs a point lookup. A missing row is reported as found=false.
func queryOne[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), query string, args ...any) (T, bool, error) {
	var zero T
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// queryAll runs a multi-row query. Returns an empty slice (not nil) when
// nothing matches.
func queryAll[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}
