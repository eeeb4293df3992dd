package menu

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/store"
	"github.com/roach88/registrar/internal/testutil"
)

func init() {
	color.NoColor = true
}

func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "menu.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// runScript feeds one answer per line to a fresh menu session.
func runScript(t *testing.T, st Store, answers ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	var out bytes.Buffer
	m := New(st, in, &out, WithClock(testutil.NewFixedClockOn("2024-09-01")))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func addStudent(t *testing.T, st *store.Store, id, name, email string) {
	t.Helper()
	res, err := st.AddStudent(context.Background(), records.Student{
		StudentID: id, Name: name, Email: email, Major: "Computer Science", Year: 2, EnrollmentDate: "2023-09-01",
	})
	require.NoError(t, err)
	require.True(t, res.OK())
}

func addCourse(t *testing.T, st *store.Store, id, name string) {
	t.Helper()
	res, err := st.AddCourse(context.Background(), records.Course{
		CourseID: id, Name: name, Department: "Computer Science", Credits: 3, Professor: "Dr. X", Semester: "Fall 2024",
	})
	require.NoError(t, err)
	require.True(t, res.OK())
}

func TestMenu_ExitWithConfirmation(t *testing.T) {
	st := createTestStore(t)

	out := runScript(t, st, "0", "n", "0", "y")

	assert.Contains(t, out, "UNIVERSITY INFORMATION SYSTEM")
	assert.Contains(t, out, "6. Reports & Statistics")
	assert.Equal(t, 2, strings.Count(out, "Are you sure you want to exit? (y/n)"))
	assert.Contains(t, out, "Thank you for using the University Information System!")
}

func TestMenu_EndOfInputExitsCleanly(t *testing.T) {
	st := createTestStore(t)

	// Input stops in the middle of adding a student.
	out := runScript(t, st, "1", "1", "S001", "John Doe")

	assert.Contains(t, out, "Email: ")
	n, err := st.Count(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMenu_InvalidOption(t *testing.T) {
	st := createTestStore(t)

	out := runScript(t, st, "9", "abc", "2", "7", "0", "0", "y")

	assert.Equal(t, 3, strings.Count(out, "Invalid option. Please try again."))
	assert.Contains(t, out, "COURSE MANAGEMENT")
}

func TestMenu_AddStudent(t *testing.T) {
	st := createTestStore(t)

	out := runScript(t, st,
		"1", "1",
		"S001", "", "John Doe", "john@student.edu", "Computer Science",
		"7", "zero", "0", "2",
		"0", "0", "y",
	)

	assert.Contains(t, out, "This field is required. Please try again.")
	assert.Contains(t, out, "Value must be at most 4")
	assert.Contains(t, out, "Please enter a valid number.")
	assert.Contains(t, out, "Value must be at least 1")
	assert.Contains(t, out, "✓ Student John Doe added successfully!")

	s, found, err := st.GetStudent(context.Background(), "S001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, records.Student{
		StudentID: "S001", Name: "John Doe", Email: "john@student.edu",
		Major: "Computer Science", Year: 2, EnrollmentDate: "2024-09-01",
	}, s)
}

func TestMenu_AddStudentConflict(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")

	out := runScript(t, st,
		"1", "1", "S002", "Jane Roe", "john@student.edu", "Math", "1",
		"0", "0", "y",
	)

	assert.Contains(t, out, "✗ Failed to add student. ID or email may already exist.")
	n, err := st.Count(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMenu_ViewAndSearchStudents(t *testing.T) {
	st := createTestStore(t)

	out := runScript(t, st, "1", "2", "0", "0", "y")
	assert.Contains(t, out, "No students found.")

	addStudent(t, st, "S001", "John Doe", "john@student.edu")
	out = runScript(t, st,
		"1", "2",
		"3", "S001",
		"3", "S404",
		"0", "0", "y",
	)
	assert.Contains(t, out, "john@student.edu")
	assert.Contains(t, out, "Student Found:")
	assert.Contains(t, out, "Enrollment Date: 2023-09-01")
	assert.Contains(t, out, "✗ Student with ID S404 not found.")
}

func TestMenu_UpdateStudentKeepsBlankFields(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")

	out := runScript(t, st,
		"1", "4", "S001",
		"", "", "Physics", "",
		"0", "0", "y",
	)

	assert.Contains(t, out, "Name [John Doe]")
	assert.Contains(t, out, "Year [2]")
	assert.Contains(t, out, "✓ Student information updated successfully!")

	s, _, err := st.GetStudent(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", s.Name)
	assert.Equal(t, "john@student.edu", s.Email)
	assert.Equal(t, "Physics", s.Major)
	assert.Equal(t, 2, s.Year)
	assert.Equal(t, "2023-09-01", s.EnrollmentDate)
}

func TestMenu_UpdateStudentEmailConflict(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")
	addStudent(t, st, "S002", "Jane Roe", "jane@student.edu")

	out := runScript(t, st,
		"1", "4", "S001",
		"", "jane@student.edu", "", "5", "3",
		"0", "0", "y",
	)

	assert.Contains(t, out, "Value must be at most 4")
	assert.Contains(t, out, "Email may belong to another student.")

	s, _, err := st.GetStudent(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "john@student.edu", s.Email)
	assert.Equal(t, 2, s.Year)
}

func TestMenu_DeleteStudentNeedsConfirmation(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")
	ctx := context.Background()

	runScript(t, st, "1", "5", "S001", "n", "0", "0", "y")
	_, found, err := st.GetStudent(ctx, "S001")
	require.NoError(t, err)
	assert.True(t, found)

	out := runScript(t, st, "1", "5", "S001", "y", "0", "0", "y")
	assert.Contains(t, out, "Student: John Doe (S001)")
	assert.Contains(t, out, "✓ Student deleted successfully!")
	_, found, err = st.GetStudent(ctx, "S001")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMenu_EnrollChecksBothIDs(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")
	addCourse(t, st, "CS101", "Introduction to Programming")
	ctx := context.Background()

	out := runScript(t, st,
		"1",
		"6", "S404", "CS101",
		"6", "S001", "NOPE",
		"6", "S001", "CS101",
		"6", "S001", "CS101",
		"7", "S001",
		"0", "0", "y",
	)

	assert.Contains(t, out, "✗ Student with ID S404 not found.")
	assert.Contains(t, out, "✗ Course with ID NOPE not found.")
	assert.Contains(t, out, "✓ Student enrolled successfully!")
	assert.Contains(t, out, "✗ Enrollment failed. Student may already be enrolled in this course.")
	assert.Contains(t, out, "Courses for John Doe:")
	assert.Contains(t, out, "Introduction to Programming")

	n, err := st.Count(ctx, "enrollments")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	en, found, err := st.GetEnrollment(ctx, "S001", "CS101")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2024-09-01", en.EnrollmentDate)
}

func TestMenu_Courses(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")

	out := runScript(t, st,
		"2",
		"1", "CS101", "Introduction to Programming", "Computer Science", "9", "3", "Dr. X", "Fall 2024",
		"5", "CS101",
		"3", "CS101",
		"4", "CS101", "y",
		"2",
		"0", "0", "y",
	)

	assert.Contains(t, out, "Value must be at most 6")
	assert.Contains(t, out, "✓ Course Introduction to Programming added successfully!")
	assert.Contains(t, out, "No students enrolled.")
	assert.Contains(t, out, "Credits: 3")
	assert.Contains(t, out, "✓ Course deleted successfully!")
	assert.Contains(t, out, "No courses found.")
}

func TestMenu_Events(t *testing.T) {
	st := createTestStore(t)

	out := runScript(t, st,
		"3",
		"1", "EVT001", "Career Fair", "", "next week", "2025-03-10", "Hall", "Career Services", "Career",
		"2",
		"3", "EVT001",
		"4", "EVT001", "yes",
		"4", "EVT001",
		"0", "0", "y",
	)

	assert.Contains(t, out, "Please enter a date as YYYY-MM-DD.")
	assert.Contains(t, out, "✓ Event Career Fair added successfully!")
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "Event Found:")
	assert.Contains(t, out, "✓ Event deleted successfully!")
	assert.Contains(t, out, "✗ Event with ID EVT001 not found.")
}

func TestMenu_FacultyAndDepartments(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	out := runScript(t, st,
		"4",
		"1", "F001", "Dr. Alice Johnson", "alice@university.edu", "Computer Science", "Professor", "2015-08-15",
		"2",
		"3", "F001",
		"0",
		"5",
		"1", "CS", "Computer Science", "Dr. Alan Turing", "Tech Building A", "cs@university.edu",
		"1", "CS", "Duplicate", "Someone", "Elsewhere", "dup@university.edu",
		"3", "CS",
		"2",
		"0",
		"0", "y",
	)

	assert.Contains(t, out, "✓ Faculty member Dr. Alice Johnson added successfully!")
	assert.Contains(t, out, "Hire Date: 2015-08-15")
	assert.Contains(t, out, "✓ Department Computer Science added successfully!")
	assert.Contains(t, out, "✗ Failed to add department. ID may already exist.")
	assert.Contains(t, out, "Contact Email: cs@university.edu")
	assert.Contains(t, out, "Tech Building A")

	_, found, err := st.GetFaculty(ctx, "F001")
	require.NoError(t, err)
	assert.True(t, found)

	out = runScript(t, st, "4", "4", "F001", "y", "0", "5", "4", "CS", "y", "0", "0", "y")
	assert.Contains(t, out, "✓ Faculty member deleted successfully!")
	assert.Contains(t, out, "✓ Department deleted successfully!")
}

func TestMenu_Reports(t *testing.T) {
	st := createTestStore(t)
	addStudent(t, st, "S001", "John Doe", "john@student.edu")
	addCourse(t, st, "CS101", "Introduction to Programming")

	out := runScript(t, st, "6", "1", "2", "3", "4", "0", "0", "y")

	assert.Contains(t, out, "Total Students: 1")
	assert.Contains(t, out, "Total Courses: 1")
	assert.Contains(t, out, "Computer Science: 1 student(s)")
	assert.Contains(t, out, "  - Introduction to Programming (CS101) - 3 credits")
	assert.Contains(t, out, "No events found.")
}

func TestMenu_StorageFaultIsReturned(t *testing.T) {
	st := createTestStore(t)
	require.NoError(t, st.Close())

	in := strings.NewReader("1\n2\n")
	var out bytes.Buffer
	err := New(st, in, &out).Run(context.Background())
	require.Error(t, err)
}
