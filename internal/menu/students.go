package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

func (m *Menu) studentMenu(ctx context.Context) error {
	return m.submenu(ctx, "STUDENT MANAGEMENT", []action{
		{"Add New Student", m.addStudent},
		{"View All Students", m.viewStudents},
		{"Search Student", m.searchStudent},
		{"Update Student", m.updateStudent},
		{"Delete Student", m.deleteStudent},
		{"Enroll Student in Course", m.enrollStudent},
		{"View Student's Courses", m.viewStudentCourses},
	})
}

func (m *Menu) addStudent(ctx context.Context) error {
	m.title("Add New Student")

	var s records.Student
	var err error
	if s.StudentID, err = m.required("Student ID (e.g., S001)"); err != nil {
		return err
	}
	if s.Name, err = m.required("Full Name"); err != nil {
		return err
	}
	if s.Email, err = m.required("Email"); err != nil {
		return err
	}
	if s.Major, err = m.required("Major"); err != nil {
		return err
	}
	if s.Year, err = m.intInRange("Year (1-4)", records.MinYear, records.MaxYear, false, 0); err != nil {
		return err
	}
	s.EnrollmentDate = m.today()

	res, err := m.store.AddStudent(ctx, s)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.logger.Debug("add student rejected", "student_id", s.StudentID, "result", res.String())
		m.failure("Failed to add student. ID or email may already exist.")
		return nil
	}
	m.success("Student %s added successfully!", s.Name)
	return nil
}

func (m *Menu) viewStudents(ctx context.Context) error {
	m.title("All Students")
	students, err := m.store.ListStudents(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(m.out, "  No students found.")
		return nil
	}
	report.StudentTable(m.out, students)
	return nil
}

func (m *Menu) searchStudent(ctx context.Context) error {
	m.title("Search Student")
	id, err := m.required("Enter Student ID")
	if err != nil {
		return err
	}

	s, found, err := m.store.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Student with ID %s not found.", id)
		return nil
	}

	fmt.Fprintln(m.out, "\n  Student Found:")
	fmt.Fprintf(m.out, "  ID: %s\n", s.StudentID)
	fmt.Fprintf(m.out, "  Name: %s\n", s.Name)
	fmt.Fprintf(m.out, "  Email: %s\n", s.Email)
	fmt.Fprintf(m.out, "  Major: %s\n", s.Major)
	fmt.Fprintf(m.out, "  Year: %d\n", s.Year)
	fmt.Fprintf(m.out, "  Enrollment Date: %s\n", s.EnrollmentDate)
	return nil
}

func (m *Menu) updateStudent(ctx context.Context) error {
	m.title("Update Student")
	id, err := m.required("Enter Student ID")
	if err != nil {
		return err
	}

	s, found, err := m.store.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Student with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Current Information for %s:\n", s.Name)
	fmt.Fprintf(m.out, "  1. Name: %s\n", s.Name)
	fmt.Fprintf(m.out, "  2. Email: %s\n", s.Email)
	fmt.Fprintf(m.out, "  3. Major: %s\n", s.Major)
	fmt.Fprintf(m.out, "  4. Year: %d\n", s.Year)
	fmt.Fprintln(m.out, "\n  Enter new values (press Enter to keep current value):")
	fmt.Fprintln(m.out)

	updated := s
	if updated.Name, err = m.optional("Name", s.Name); err != nil {
		return err
	}
	if updated.Email, err = m.optional("Email", s.Email); err != nil {
		return err
	}
	if updated.Major, err = m.optional("Major", s.Major); err != nil {
		return err
	}
	prompt := fmt.Sprintf("Year [%d]", s.Year)
	if updated.Year, err = m.intInRange(prompt, records.MinYear, records.MaxYear, true, s.Year); err != nil {
		return err
	}

	res, err := m.store.UpdateStudent(ctx, updated)
	if err != nil {
		return err
	}
	switch res.Status {
	case store.StatusOK:
		m.success("Student information updated successfully!")
	case store.StatusConflict:
		m.failure("Failed to update student information. Email may belong to another student.")
	default:
		m.failure("Failed to update student information.")
	}
	return nil
}

func (m *Menu) deleteStudent(ctx context.Context) error {
	m.title("Delete Student")
	id, err := m.required("Enter Student ID")
	if err != nil {
		return err
	}

	s, found, err := m.store.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Student with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Student: %s (%s)\n", s.Name, s.StudentID)
	ok, err := m.confirm("Are you sure you want to delete this student?")
	if err != nil || !ok {
		return err
	}

	res, err := m.store.DeleteStudent(ctx, id)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to delete student.")
		return nil
	}
	m.success("Student deleted successfully!")
	return nil
}

// enrollStudent checks both ids exist before enrolling; the store itself
// accepts any pair.
func (m *Menu) enrollStudent(ctx context.Context) error {
	m.title("Enroll Student in Course")
	studentID, err := m.required("Student ID")
	if err != nil {
		return err
	}
	courseID, err := m.required("Course ID")
	if err != nil {
		return err
	}

	if _, found, err := m.store.GetStudent(ctx, studentID); err != nil {
		return err
	} else if !found {
		m.failure("Student with ID %s not found.", studentID)
		return nil
	}
	if _, found, err := m.store.GetCourse(ctx, courseID); err != nil {
		return err
	} else if !found {
		m.failure("Course with ID %s not found.", courseID)
		return nil
	}

	res, err := m.store.EnrollStudent(ctx, studentID, courseID, m.today())
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Enrollment failed. Student may already be enrolled in this course.")
		return nil
	}
	m.success("Student enrolled successfully!")
	return nil
}

func (m *Menu) viewStudentCourses(ctx context.Context) error {
	m.title("Student's Courses")
	id, err := m.required("Enter Student ID")
	if err != nil {
		return err
	}

	s, found, err := m.store.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Student with ID %s not found.", id)
		return nil
	}

	courses, err := m.store.StudentCourses(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\n  Courses for %s:\n\n", s.Name)
	if len(courses) == 0 {
		fmt.Fprintln(m.out, "  No courses found.")
		return nil
	}
	report.CourseTable(m.out, courses)
	return nil
}
