package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/roach88/registrar/internal/records"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testStudent(id, name, email string) records.Student {
	return records.Student{
		StudentID:      id,
		Name:           name,
		Email:          email,
		Major:          "Computer Science",
		Year:           2,
		EnrollmentDate: "2023-09-01",
	}
}

func testCourse(id, name string) records.Course {
	return records.Course{
		CourseID:   id,
		Name:       name,
		Department: "Computer Science",
		Credits:    3,
		Professor:  "Dr. Alice Johnson",
		Semester:   "Fall 2024",
	}
}

func testFaculty(id, name, email string) records.Faculty {
	return records.Faculty{
		FacultyID:  id,
		Name:       name,
		Email:      email,
		Department: "Computer Science",
		Position:   "Professor",
		HireDate:   "2015-08-15",
	}
}

func testDepartment(id, name string) records.Department {
	return records.Department{
		DeptID:       id,
		Name:         name,
		Head:         "Dr. Alan Turing",
		Building:     "Tech Building A",
		ContactEmail: "cs@university.edu",
	}
}

func testEvent(id, name, date string) records.Event {
	return records.Event{
		EventID:     id,
		Name:        name,
		Description: "Welcome event for new students",
		Date:        date,
		Location:    "Main Auditorium",
		Organizer:   "Student Affairs",
		Category:    "Academic",
	}
}

// verifyPragma checks that a pragma is set to the expected value.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
