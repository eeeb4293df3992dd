package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/records"
)

func TestEnrollment_Scenario(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	dept := records.Department{DeptID: "CS", Name: "Computer Science", Head: "Dr. X", Building: "A", ContactEmail: "cs@u.edu"}
	res, err := s.AddDepartment(ctx, dept)
	require.NoError(t, err)
	require.True(t, res.OK())

	fac := records.Faculty{FacultyID: "F001", Name: "Dr. X", Email: "x@u.edu", Department: "CS", Position: "Professor", HireDate: "2015-08-15"}
	res, err = s.AddFaculty(ctx, fac)
	require.NoError(t, err)
	require.True(t, res.OK())

	course := records.Course{CourseID: "CS101", Name: "Intro", Department: "CS", Credits: 3, Professor: "Dr. X", Semester: "Fall 2024"}
	res, err = s.AddCourse(ctx, course)
	require.NoError(t, err)
	require.True(t, res.OK())

	student := testStudent("S001", "John Doe", "john@student.edu")
	res, err = s.AddStudent(ctx, student)
	require.NoError(t, err)
	require.True(t, res.OK())

	res, err = s.EnrollStudent(ctx, "S001", "CS101", "2024-09-01")
	require.NoError(t, err)
	require.True(t, res.OK())

	courses, err := s.StudentCourses(ctx, "S001")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course, courses[0])

	students, err := s.CourseStudents(ctx, "CS101")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, student, students[0])

	en, found, err := s.GetEnrollment(ctx, "S001", "CS101")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, records.Enrollment{StudentID: "S001", CourseID: "CS101", EnrollmentDate: "2024-09-01"}, en)
}

func TestEnrollStudent_Duplicate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res, err := s.EnrollStudent(ctx, "S001", "CS101", "2024-09-01")
	require.NoError(t, err)
	assert.True(t, res.OK())

	res, err = s.EnrollStudent(ctx, "S001", "CS101", "2024-09-02")
	require.NoError(t, err)
	assert.Equal(t, StatusConflict, res.Status)
	assert.Equal(t, "enrollments.student_id, enrollments.course_id", res.Constraint)

	en, _, err := s.GetEnrollment(ctx, "S001", "CS101")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-01", en.EnrollmentDate)
}

func TestEnrollStudent_UnknownIDsAccepted(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res, err := s.EnrollStudent(ctx, "ghost", "nowhere", "2024-09-01")
	require.NoError(t, err)
	assert.True(t, res.OK())

	courses, err := s.StudentCourses(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, courses, "join drops enrollments without a course row")
}

func TestDelete_LeavesOrphanedEnrollments(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.AddStudent(ctx, testStudent("S001", "John Doe", "john@student.edu"))
	require.NoError(t, err)
	_, err = s.AddCourse(ctx, testCourse("CS101", "Intro"))
	require.NoError(t, err)
	_, err = s.EnrollStudent(ctx, "S001", "CS101", "2024-09-01")
	require.NoError(t, err)

	res, err := s.DeleteStudent(ctx, "S001")
	require.NoError(t, err)
	require.True(t, res.OK())

	res, err = s.DeleteCourse(ctx, "CS101")
	require.NoError(t, err)
	require.True(t, res.OK())

	n, err := s.Count(ctx, "enrollments")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, found, err := s.GetEnrollment(ctx, "S001", "CS101")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestEnrollment_JoinsAreInverse(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	students := []records.Student{
		testStudent("S001", "John Doe", "john@student.edu"),
		testStudent("S002", "Jane Smith", "jane@student.edu"),
		testStudent("S003", "Michael Johnson", "michael@student.edu"),
	}
	courses := []records.Course{
		testCourse("CS101", "Intro"),
		testCourse("MATH101", "Calculus I"),
	}
	for _, st := range students {
		_, err := s.AddStudent(ctx, st)
		require.NoError(t, err)
	}
	for _, c := range courses {
		_, err := s.AddCourse(ctx, c)
		require.NoError(t, err)
	}

	pairs := [][2]string{
		{"S001", "CS101"},
		{"S001", "MATH101"},
		{"S003", "MATH101"},
		{"S002", "CS101"},
	}
	for _, p := range pairs {
		res, err := s.EnrollStudent(ctx, p[0], p[1], "2024-09-01")
		require.NoError(t, err)
		require.True(t, res.OK())
	}

	for _, p := range pairs {
		cs, err := s.StudentCourses(ctx, p[0])
		require.NoError(t, err)
		assert.Contains(t, courseIDs(cs), p[1])

		ss, err := s.CourseStudents(ctx, p[1])
		require.NoError(t, err)
		assert.Contains(t, studentIDs(ss), p[0])
	}

	// Enrollment order, not name order.
	ss, err := s.CourseStudents(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{"S001", "S002"}, studentIDs(ss))

	cs, err := s.StudentCourses(ctx, "S002")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101"}, courseIDs(cs))

	none, err := s.StudentCourses(ctx, "S404")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func courseIDs(cs []records.Course) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.CourseID)
	}
	return ids
}

func studentIDs(ss []records.Student) []string {
	ids := make([]string, 0, len(ss))
	for _, s := range ss {
		ids = append(ids, s.StudentID)
	}
	return ids
}

func TestAddEnrollment_KeepsGrade(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res, err := s.AddEnrollment(ctx, records.Enrollment{StudentID: "S1", CourseID: "C1", EnrollmentDate: "2024-01-15", Grade: "A"})
	require.NoError(t, err)
	require.True(t, res.OK())

	en, found, err := s.GetEnrollment(ctx, "S1", "C1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, records.Enrollment{StudentID: "S1", CourseID: "C1", EnrollmentDate: "2024-01-15", Grade: "A"}, en)

	res, err = s.AddEnrollment(ctx, records.Enrollment{StudentID: "S1", CourseID: "C1", EnrollmentDate: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, StatusConflict, res.Status)

	res, err = s.EnrollStudent(ctx, "S2", "C1", "2024-09-01")
	require.NoError(t, err)
	require.True(t, res.OK())
	en, _, err = s.GetEnrollment(ctx, "S2", "C1")
	require.NoError(t, err)
	assert.Empty(t, en.Grade)
}
