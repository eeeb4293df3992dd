package records

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the persisted date format (YYYY-MM-DD, no time of day).
const DateLayout = "2006-01-02"

// Year and credit bounds accepted by the front ends.
const (
	MinYear    = 1
	MaxYear    = 4
	MinCredits = 1
	MaxCredits = 6
)

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// ValidateRange checks lo <= v <= hi.
func ValidateRange(field string, v, lo, hi int) error {
	if v < lo {
		return fmt.Errorf("%s must be at least %d", field, lo)
	}
	if v > hi {
		return fmt.Errorf("%s must be at most %d", field, hi)
	}
	return nil
}

// ValidateStudent checks the fields a front end collects for a student.
func ValidateStudent(s Student) error {
	if err := ValidateStudentDetails(s); err != nil {
		return err
	}
	return ValidateDate(s.EnrollmentDate)
}

// ValidateStudentDetails checks the fields an update can change. The
// enrollment date is left alone.
func ValidateStudentDetails(s Student) error {
	if err := required(map[string]string{
		"student_id": s.StudentID,
		"name":       s.Name,
		"email":      s.Email,
		"major":      s.Major,
	}); err != nil {
		return err
	}
	return ValidateRange("year", s.Year, MinYear, MaxYear)
}

// ValidateCourse checks the fields a front end collects for a course.
func ValidateCourse(c Course) error {
	if err := required(map[string]string{
		"course_id":  c.CourseID,
		"name":       c.Name,
		"department": c.Department,
		"professor":  c.Professor,
		"semester":   c.Semester,
	}); err != nil {
		return err
	}
	return ValidateRange("credits", c.Credits, MinCredits, MaxCredits)
}

// ValidateFaculty checks the fields a front end collects for a faculty member.
func ValidateFaculty(f Faculty) error {
	if err := required(map[string]string{
		"faculty_id": f.FacultyID,
		"name":       f.Name,
		"email":      f.Email,
		"department": f.Department,
		"position":   f.Position,
	}); err != nil {
		return err
	}
	return ValidateDate(f.HireDate)
}

// ValidateDepartment checks the fields a front end collects for a department.
func ValidateDepartment(d Department) error {
	return required(map[string]string{
		"dept_id":       d.DeptID,
		"name":          d.Name,
		"head":          d.Head,
		"building":      d.Building,
		"contact_email": d.ContactEmail,
	})
}

// ValidateEvent checks the fields a front end collects for an event.
// Description is optional.
func ValidateEvent(e Event) error {
	if err := required(map[string]string{
		"event_id":  e.EventID,
		"name":      e.Name,
		"location":  e.Location,
		"organizer": e.Organizer,
		"category":  e.Category,
	}); err != nil {
		return err
	}
	return ValidateDate(e.Date)
}

// required returns an error naming every blank field, sorted.
func required(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%s is required", strings.Join(missing, ", "))
}
