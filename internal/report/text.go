package report

import (
	"fmt"
	"io"

	"github.com/roach88/registrar/internal/records"
)

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
}

// WriteSummary renders totals per kind.
func WriteSummary(w io.Writer, t Totals) {
	heading(w, "University System Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Students: %d\n", t.Students)
	fmt.Fprintf(w, "Total Courses: %d\n", t.Courses)
	fmt.Fprintf(w, "Total Events: %d\n", t.Events)
	fmt.Fprintf(w, "Total Faculty: %d\n", t.Faculty)
	fmt.Fprintf(w, "Total Departments: %d\n", t.Departments)
}

// WriteStudentsByMajor renders students grouped by major.
func WriteStudentsByMajor(w io.Writer, groups []StudentGroup) {
	heading(w, "Students by Major")
	if len(groups) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No students found.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s: %d student(s)\n", g.Major, len(g.Students))
		for _, s := range g.Students {
			fmt.Fprintf(w, "  - %s (%s)\n", s.Name, s.StudentID)
		}
	}
}

// WriteCoursesByDepartment renders courses grouped by department.
func WriteCoursesByDepartment(w io.Writer, groups []CourseGroup) {
	heading(w, "Courses by Department")
	if len(groups) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No courses found.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s: %d course(s)\n", g.Department, len(g.Courses))
		for _, c := range g.Courses {
			fmt.Fprintf(w, "  - %s (%s) - %d credits\n", c.Name, c.CourseID, c.Credits)
		}
	}
}

// WriteEventsByDate renders events with their details, in the given order.
func WriteEventsByDate(w io.Writer, events []records.Event) {
	heading(w, "All Events (by Date)")
	if len(events) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No events found.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "\n%s\n", e.Name)
		fmt.Fprintf(w, "  Date: %s\n", e.Date)
		fmt.Fprintf(w, "  Location: %s\n", e.Location)
		fmt.Fprintf(w, "  Category: %s\n", e.Category)
		fmt.Fprintf(w, "  Organizer: %s\n", e.Organizer)
	}
}
