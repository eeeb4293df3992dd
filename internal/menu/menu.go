// Package menu implements the registrar's interactive, numbered-menu front
// end. It reads answers line by line from any io.Reader, so a script of
// answers drives it exactly like a person at a terminal.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/store"
)

// Store is the set of store operations the menu drives.
type Store interface {
	AddStudent(ctx context.Context, s records.Student) (store.Result, error)
	GetStudent(ctx context.Context, studentID string) (records.Student, bool, error)
	ListStudents(ctx context.Context) ([]records.Student, error)
	UpdateStudent(ctx context.Context, s records.Student) (store.Result, error)
	DeleteStudent(ctx context.Context, studentID string) (store.Result, error)

	AddCourse(ctx context.Context, c records.Course) (store.Result, error)
	GetCourse(ctx context.Context, courseID string) (records.Course, bool, error)
	ListCourses(ctx context.Context) ([]records.Course, error)
	DeleteCourse(ctx context.Context, courseID string) (store.Result, error)

	AddFaculty(ctx context.Context, f records.Faculty) (store.Result, error)
	GetFaculty(ctx context.Context, facultyID string) (records.Faculty, bool, error)
	ListFaculty(ctx context.Context) ([]records.Faculty, error)
	DeleteFaculty(ctx context.Context, facultyID string) (store.Result, error)

	AddDepartment(ctx context.Context, d records.Department) (store.Result, error)
	GetDepartment(ctx context.Context, deptID string) (records.Department, bool, error)
	ListDepartments(ctx context.Context) ([]records.Department, error)
	DeleteDepartment(ctx context.Context, deptID string) (store.Result, error)

	AddEvent(ctx context.Context, e records.Event) (store.Result, error)
	GetEvent(ctx context.Context, eventID string) (records.Event, bool, error)
	ListEvents(ctx context.Context) ([]records.Event, error)
	DeleteEvent(ctx context.Context, eventID string) (store.Result, error)

	EnrollStudent(ctx context.Context, studentID, courseID, enrollmentDate string) (store.Result, error)
	StudentCourses(ctx context.Context, studentID string) ([]records.Course, error)
	CourseStudents(ctx context.Context, courseID string) ([]records.Student, error)
}

// Clock supplies today's date for new students and enrollments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// errQuit unwinds the menus when input runs out.
var errQuit = errors.New("menu: end of input")

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	noteColor   = color.New(color.FgYellow)
)

// Menu is one interactive session.
type Menu struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	clock  Clock
	logger *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithClock sets the clock used for "today".
func WithClock(c Clock) Option {
	return func(m *Menu) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a menu session reading answers from in and writing to out.
func New(st Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		clock:  systemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user exits or input ends.
// Only storage faults are returned as errors.
func (m *Menu) Run(ctx context.Context) error {
	err := m.mainMenu(ctx)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	sections := []action{
		{"Student Management", m.studentMenu},
		{"Course Management", m.courseMenu},
		{"Event Tracking", m.eventMenu},
		{"Faculty Management", m.facultyMenu},
		{"Department Management", m.departmentMenu},
		{"Reports & Statistics", m.reportsMenu},
	}

	for {
		m.header("UNIVERSITY INFORMATION SYSTEM")
		m.options(sections, "Exit")

		choice, err := m.required("Select an option")
		if err != nil {
			return err
		}

		if choice == "0" {
			ok, err := m.confirm("Are you sure you want to exit?")
			if err != nil {
				return err
			}
			if ok {
				okColor.Fprintln(m.out, "\n  Thank you for using the University Information System!")
				return nil
			}
			continue
		}

		a, ok := pick(sections, choice)
		if !ok {
			m.note("Invalid option. Please try again.")
			continue
		}
		if err := a.run(ctx); err != nil {
			return err
		}
	}
}

// action is one numbered menu entry.
type action struct {
	label string
	run   func(ctx context.Context) error
}

// submenu loops over a numbered list until the user picks 0.
func (m *Menu) submenu(ctx context.Context, title string, actions []action) error {
	for {
		m.header(title)
		m.options(actions, "Back")

		choice, err := m.required("Select an option")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		a, ok := pick(actions, choice)
		if !ok {
			m.note("Invalid option. Please try again.")
			continue
		}
		if err := a.run(ctx); err != nil {
			return err
		}
	}
}

func pick(actions []action, choice string) (action, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(actions) {
		return action{}, false
	}
	return actions[n-1], true
}

func (m *Menu) header(title string) {
	rule := strings.Repeat("=", 60)
	headerColor.Fprintf(m.out, "\n%s\n  %s\n%s\n", rule, title, rule)
}

func (m *Menu) options(actions []action, zero string) {
	fmt.Fprintln(m.out)
	for i, a := range actions {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, a.label)
	}
	fmt.Fprintf(m.out, "  0. %s\n\n", zero)
}

func (m *Menu) title(s string) {
	headerColor.Fprintf(m.out, "\n  === %s ===\n\n", s)
}

func (m *Menu) success(format string, args ...any) {
	okColor.Fprintf(m.out, "\n  ✓ "+format+"\n", args...)
}

func (m *Menu) failure(format string, args ...any) {
	failColor.Fprintf(m.out, "\n  ✗ "+format+"\n", args...)
}

func (m *Menu) note(format string, args ...any) {
	noteColor.Fprintf(m.out, "\n  "+format+"\n", args...)
}

func (m *Menu) today() string {
	return records.FormatDate(m.clock.Now())
}

// readLine prompts once and returns the trimmed answer.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprintf(m.out, "  %s: ", prompt)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// required re-prompts until the answer is non-empty.
func (m *Menu) required(prompt string) (string, error) {
	for {
		v, err := m.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(m.out, "  This field is required. Please try again.")
	}
}

// optional returns the answer, or current when the answer is empty.
func (m *Menu) optional(prompt, current string) (string, error) {
	v, err := m.readLine(fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// intInRange re-prompts until the answer is an integer in [lo, hi].
// With allowEmpty, an empty answer returns current.
func (m *Menu) intInRange(prompt string, lo, hi int, allowEmpty bool, current int) (int, error) {
	for {
		v, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if v == "" && allowEmpty {
			return current, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(m.out, "  Please enter a valid number.")
			continue
		}
		if n < lo {
			fmt.Fprintf(m.out, "  Value must be at least %d\n", lo)
			continue
		}
		if n > hi {
			fmt.Fprintf(m.out, "  Value must be at most %d\n", hi)
			continue
		}
		return n, nil
	}
}

// date re-prompts until the answer is a YYYY-MM-DD date.
func (m *Menu) date(prompt string) (string, error) {
	for {
		v, err := m.required(prompt)
		if err != nil {
			return "", err
		}
		if err := records.ValidateDate(v); err != nil {
			fmt.Fprintln(m.out, "  Please enter a date as YYYY-MM-DD.")
			continue
		}
		return v, nil
	}
}

// confirm asks a y/n question; only "y" or "yes" confirms.
func (m *Menu) confirm(question string) (bool, error) {
	v, err := m.readLine(question + " (y/n)")
	if err != nil {
		return false, err
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes", nil
}
