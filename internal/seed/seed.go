// Package seed loads sample records from a YAML fixture and writes them
// through the records store.
//
// Fixtures are checked against an embedded CUE schema before anything is
// written, so a bad fixture never leaves a half-seeded database behind.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/store"
)

//go:embed sample.yaml
var sampleYAML []byte

//go:embed fixture.cue
var fixtureSchema string

// Fixture is a set of records to insert.
type Fixture struct {
	Departments []records.Department `yaml:"departments"`
	Faculty     []records.Faculty    `yaml:"faculty"`
	Courses     []records.Course     `yaml:"courses"`
	Students    []records.Student    `yaml:"students"`
	Events      []Event              `yaml:"events"`
	Enrollments []records.Enrollment `yaml:"enrollments"`
}

// Event is a fixture event. Exactly one of Date or OffsetDays is set;
// OffsetDays is resolved against the clock when the fixture is applied.
type Event struct {
	records.Event `yaml:",inline"`
	OffsetDays    *int `yaml:"offset_days,omitempty"`
}

// Clock supplies "today" for relative dates.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Writer is the subset of the store used for seeding.
type Writer interface {
	AddDepartment(ctx context.Context, d records.Department) (store.Result, error)
	AddFaculty(ctx context.Context, f records.Faculty) (store.Result, error)
	AddCourse(ctx context.Context, c records.Course) (store.Result, error)
	AddStudent(ctx context.Context, s records.Student) (store.Result, error)
	AddEvent(ctx context.Context, e records.Event) (store.Result, error)
	AddEnrollment(ctx context.Context, en records.Enrollment) (store.Result, error)
}

// Sample returns the built-in sample fixture.
func Sample() (*Fixture, error) {
	return Parse(sampleYAML)
}

// LoadFile reads and parses a fixture file.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the fixture schema and decodes it.
func Parse(data []byte) (*Fixture, error) {
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	for i, e := range fx.Events {
		hasDate := e.Date != ""
		hasOffset := e.OffsetDays != nil
		if hasDate == hasOffset {
			return nil, fmt.Errorf("invalid fixture: events[%d] (%s): exactly one of date or offset_days is required", i, e.EventID)
		}
	}

	return &fx, nil
}

// validate unifies the raw YAML document with #Fixture.
func validate(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	cctx := cuecontext.New()
	schema := cctx.CompileString(fixtureSchema, cue.Filename("fixture.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	v := cctx.Encode(normalize(raw))
	if err := v.Err(); err != nil {
		return err
	}

	unified := schema.LookupPath(cue.ParsePath("#Fixture")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// normalize turns YAML timestamps back into YYYY-MM-DD text so the schema
// sees the same strings the store will.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	case time.Time:
		return records.FormatDate(x)
	default:
		return v
	}
}

// formatCUEError flattens CUE's error list into one message.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if path := e.Path(); len(path) > 0 {
			msgs = append(msgs, strings.Join(path, ".")+": "+e.Error())
			continue
		}
		msgs = append(msgs, e.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Outcome records what happened to one fixture record.
type Outcome struct {
	Kind   records.Kind
	ID     string
	Label  string
	Result store.Result
}

// Summary is the result of applying a fixture.
type Summary struct {
	Outcomes []Outcome
}

// Added counts records of kind that were written.
func (s *Summary) Added(kind records.Kind) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Kind == kind && o.Result.OK() {
			n++
		}
	}
	return n
}

// Skipped counts records of kind that already existed.
func (s *Summary) Skipped(kind records.Kind) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Kind == kind && !o.Result.OK() {
			n++
		}
	}
	return n
}

// Apply writes every record in fx, in dependency order: departments,
// faculty, courses, students, events, enrollments. Records that already
// exist are reported as skipped. Storage errors stop the run.
func Apply(ctx context.Context, w Writer, fx *Fixture, clock Clock) (*Summary, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	today := clock.Now()
	sum := &Summary{}

	record := func(kind records.Kind, id, label string, res store.Result, err error) error {
		if err != nil {
			return fmt.Errorf("seed %s %s: %w", kind, id, err)
		}
		sum.Outcomes = append(sum.Outcomes, Outcome{Kind: kind, ID: id, Label: label, Result: res})
		return nil
	}

	for _, d := range fx.Departments {
		res, err := w.AddDepartment(ctx, d)
		if err := record(records.KindDepartment, d.DeptID, d.Name, res, err); err != nil {
			return sum, err
		}
	}
	for _, f := range fx.Faculty {
		res, err := w.AddFaculty(ctx, f)
		if err := record(records.KindFaculty, f.FacultyID, f.Name, res, err); err != nil {
			return sum, err
		}
	}
	for _, c := range fx.Courses {
		res, err := w.AddCourse(ctx, c)
		if err := record(records.KindCourse, c.CourseID, c.Name, res, err); err != nil {
			return sum, err
		}
	}
	for _, s := range fx.Students {
		res, err := w.AddStudent(ctx, s)
		if err := record(records.KindStudent, s.StudentID, s.Name, res, err); err != nil {
			return sum, err
		}
	}
	for _, e := range fx.Events {
		ev := e.Event
		if e.OffsetDays != nil {
			ev.Date = records.FormatDate(today.AddDate(0, 0, *e.OffsetDays))
		}
		res, err := w.AddEvent(ctx, ev)
		if err := record(records.KindEvent, ev.EventID, ev.Name, res, err); err != nil {
			return sum, err
		}
	}
	for _, en := range fx.Enrollments {
		if en.EnrollmentDate == "" {
			en.EnrollmentDate = records.FormatDate(today)
		}
		res, err := w.AddEnrollment(ctx, en)
		label := en.StudentID + " in " + en.CourseID
		if err := record(records.KindEnrollment, en.StudentID+"/"+en.CourseID, label, res, err); err != nil {
			return sum, err
		}
	}

	return sum, nil
}
