package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/roach88/registrar/internal/records"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// StudentTable lists students one per row.
func StudentTable(w io.Writer, students []records.Student) {
	table := newTable(w, []string{"ID", "Name", "Major", "Year", "Email"})
	for _, s := range students {
		table.Append([]string{s.StudentID, s.Name, s.Major, strconv.Itoa(s.Year), s.Email})
	}
	table.Render()
}

// CourseTable lists courses one per row.
func CourseTable(w io.Writer, courses []records.Course) {
	table := newTable(w, []string{"ID", "Name", "Department", "Credits", "Professor"})
	for _, c := range courses {
		table.Append([]string{c.CourseID, c.Name, c.Department, strconv.Itoa(c.Credits), c.Professor})
	}
	table.Render()
}

// FacultyTable lists faculty members one per row.
func FacultyTable(w io.Writer, faculty []records.Faculty) {
	table := newTable(w, []string{"ID", "Name", "Department", "Position"})
	for _, f := range faculty {
		table.Append([]string{f.FacultyID, f.Name, f.Department, f.Position})
	}
	table.Render()
}

// DepartmentTable lists departments one per row.
func DepartmentTable(w io.Writer, departments []records.Department) {
	table := newTable(w, []string{"ID", "Name", "Head", "Building"})
	for _, d := range departments {
		table.Append([]string{d.DeptID, d.Name, d.Head, d.Building})
	}
	table.Render()
}

// EventTable lists events one per row.
func EventTable(w io.Writer, events []records.Event) {
	table := newTable(w, []string{"ID", "Name", "Date", "Location", "Category"})
	for _, e := range events {
		table.Append([]string{e.EventID, e.Name, e.Date, e.Location, e.Category})
	}
	table.Render()
}

// RosterTable lists the students enrolled in a course.
func RosterTable(w io.Writer, students []records.Student) {
	table := newTable(w, []string{"Student ID", "Name", "Major", "Year"})
	for _, s := range students {
		table.Append([]string{s.StudentID, s.Name, s.Major, strconv.Itoa(s.Year)})
	}
	table.Render()
}
