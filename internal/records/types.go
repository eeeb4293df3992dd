package records

// Student is an enrolled student. Email is unique across students.
type Student struct {
	StudentID      string `json:"student_id" yaml:"student_id"`
	Name           string `json:"name" yaml:"name"`
	Email          string `json:"email" yaml:"email"`
	Major          string `json:"major" yaml:"major"`
	Year           int    `json:"year" yaml:"year"`
	EnrollmentDate string `json:"enrollment_date" yaml:"enrollment_date"`
}

// Course is a course offering.
type Course struct {
	CourseID   string `json:"course_id" yaml:"course_id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
	Credits    int    `json:"credits" yaml:"credits"`
	Professor  string `json:"professor" yaml:"professor"`
	Semester   string `json:"semester" yaml:"semester"`
}

// Faculty is a faculty member. Email is unique across faculty.
type Faculty struct {
	FacultyID  string `json:"faculty_id" yaml:"faculty_id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Department string `json:"department" yaml:"department"`
	Position   string `json:"position" yaml:"position"`
	HireDate   string `json:"hire_date" yaml:"hire_date"`
}

// Department is an academic department.
type Department struct {
	DeptID       string `json:"dept_id" yaml:"dept_id"`
	Name         string `json:"name" yaml:"name"`
	Head         string `json:"head" yaml:"head"`
	Building     string `json:"building" yaml:"building"`
	ContactEmail string `json:"contact_email" yaml:"contact_email"`
}

// Event is a university event.
// An empty Description is persisted as NULL.
type Event struct {
	EventID     string `json:"event_id" yaml:"event_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string `json:"date" yaml:"date"`
	Location    string `json:"location" yaml:"location"`
	Organizer   string `json:"organizer" yaml:"organizer"`
	Category    string `json:"category" yaml:"category"`
}

// Enrollment links a student to a course. At most one exists per
// (StudentID, CourseID) pair. An empty Grade is persisted as NULL.
type Enrollment struct {
	StudentID      string `json:"student_id" yaml:"student_id"`
	CourseID       string `json:"course_id" yaml:"course_id"`
	EnrollmentDate string `json:"enrollment_date" yaml:"enrollment_date"`
	Grade          string `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// Kind names a record kind.
type Kind string

// Record kinds.
const (
	KindStudent    Kind = "student"
	KindCourse     Kind = "course"
	KindFaculty    Kind = "faculty"
	KindDepartment Kind = "department"
	KindEvent      Kind = "event"
	KindEnrollment Kind = "enrollment"
)
