package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
)

func (m *Menu) courseMenu(ctx context.Context) error {
	return m.submenu(ctx, "COURSE MANAGEMENT", []action{
		{"Add New Course", m.addCourse},
		{"View All Courses", m.viewCourses},
		{"Search Course", m.searchCourse},
		{"Delete Course", m.deleteCourse},
		{"View Course Enrollment", m.viewCourseStudents},
	})
}

func (m *Menu) addCourse(ctx context.Context) error {
	m.title("Add New Course")

	var c records.Course
	var err error
	if c.CourseID, err = m.required("Course ID (e.g., CS101)"); err != nil {
		return err
	}
	if c.Name, err = m.required("Course Name"); err != nil {
		return err
	}
	if c.Department, err = m.required("Department"); err != nil {
		return err
	}
	if c.Credits, err = m.intInRange("Credits", records.MinCredits, records.MaxCredits, false, 0); err != nil {
		return err
	}
	if c.Professor, err = m.required("Professor"); err != nil {
		return err
	}
	if c.Semester, err = m.required("Semester (e.g., Fall 2024)"); err != nil {
		return err
	}

	res, err := m.store.AddCourse(ctx, c)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to add course. ID may already exist.")
		return nil
	}
	m.success("Course %s added successfully!", c.Name)
	return nil
}

func (m *Menu) viewCourses(ctx context.Context) error {
	m.title("All Courses")
	courses, err := m.store.ListCourses(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(m.out, "  No courses found.")
		return nil
	}
	report.CourseTable(m.out, courses)
	return nil
}

func (m *Menu) searchCourse(ctx context.Context) error {
	m.title("Search Course")
	id, err := m.required("Enter Course ID")
	if err != nil {
		return err
	}

	c, found, err := m.store.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Course with ID %s not found.", id)
		return nil
	}

	fmt.Fprintln(m.out, "\n  Course Found:")
	fmt.Fprintf(m.out, "  ID: %s\n", c.CourseID)
	fmt.Fprintf(m.out, "  Name: %s\n", c.Name)
	fmt.Fprintf(m.out, "  Department: %s\n", c.Department)
	fmt.Fprintf(m.out, "  Credits: %d\n", c.Credits)
	fmt.Fprintf(m.out, "  Professor: %s\n", c.Professor)
	fmt.Fprintf(m.out, "  Semester: %s\n", c.Semester)
	return nil
}

func (m *Menu) deleteCourse(ctx context.Context) error {
	m.title("Delete Course")
	id, err := m.required("Enter Course ID")
	if err != nil {
		return err
	}

	c, found, err := m.store.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Course with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Course: %s (%s)\n", c.Name, c.CourseID)
	ok, err := m.confirm("Are you sure you want to delete this course?")
	if err != nil || !ok {
		return err
	}

	res, err := m.store.DeleteCourse(ctx, id)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to delete course.")
		return nil
	}
	m.success("Course deleted successfully!")
	return nil
}

func (m *Menu) viewCourseStudents(ctx context.Context) error {
	m.title("Course Enrollment")
	id, err := m.required("Enter Course ID")
	if err != nil {
		return err
	}

	c, found, err := m.store.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Course with ID %s not found.", id)
		return nil
	}

	students, err := m.store.CourseStudents(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\n  Students enrolled in %s:\n\n", c.Name)
	if len(students) == 0 {
		fmt.Fprintln(m.out, "  No students enrolled.")
		return nil
	}
	report.RosterTable(m.out, students)
	return nil
}
