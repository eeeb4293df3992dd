package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/store"
)

type opKind int

const (
	opWrite opKind = iota
	opGet
	opList
)

// opFunc runs one operation. The returned event carries only the outcome
// fields; the caller fills in sequence, phase, op and args.
type opFunc func(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error)

type operation struct {
	kind opKind
	run  opFunc
}

var operations = map[string]operation{
	"add_student":    {opWrite, writeOp((*store.Store).AddStudent)},
	"add_course":     {opWrite, writeOp((*store.Store).AddCourse)},
	"add_faculty":    {opWrite, writeOp((*store.Store).AddFaculty)},
	"add_department": {opWrite, writeOp((*store.Store).AddDepartment)},
	"add_event":      {opWrite, writeOp((*store.Store).AddEvent)},
	"update_student": {opWrite, writeOp((*store.Store).UpdateStudent)},

	"delete_student":    {opWrite, deleteOp("student_id", (*store.Store).DeleteStudent)},
	"delete_course":     {opWrite, deleteOp("course_id", (*store.Store).DeleteCourse)},
	"delete_faculty":    {opWrite, deleteOp("faculty_id", (*store.Store).DeleteFaculty)},
	"delete_department": {opWrite, deleteOp("dept_id", (*store.Store).DeleteDepartment)},
	"delete_event":      {opWrite, deleteOp("event_id", (*store.Store).DeleteEvent)},

	"enroll": {opWrite, enrollOp},

	"get_student":    {opGet, getOp("student_id", (*store.Store).GetStudent)},
	"get_course":     {opGet, getOp("course_id", (*store.Store).GetCourse)},
	"get_faculty":    {opGet, getOp("faculty_id", (*store.Store).GetFaculty)},
	"get_department": {opGet, getOp("dept_id", (*store.Store).GetDepartment)},
	"get_event":      {opGet, getOp("event_id", (*store.Store).GetEvent)},

	"list_students":    {opList, listOp((*store.Store).ListStudents, studentID)},
	"list_courses":     {opList, listOp((*store.Store).ListCourses, courseID)},
	"list_faculty":     {opList, listOp((*store.Store).ListFaculty, func(f records.Faculty) string { return f.FacultyID })},
	"list_departments": {opList, listOp((*store.Store).ListDepartments, func(d records.Department) string { return d.DeptID })},
	"list_events":      {opList, listOp((*store.Store).ListEvents, func(e records.Event) string { return e.EventID })},

	"student_courses": {opList, joinOp("student_id", (*store.Store).StudentCourses, courseID)},
	"course_students": {opList, joinOp("course_id", (*store.Store).CourseStudents, studentID)},
}

func studentID(s records.Student) string { return s.StudentID }
func courseID(c records.Course) string   { return c.CourseID }

func writeOp[T any](fn func(*store.Store, context.Context, T) (store.Result, error)) opFunc {
	return func(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error) {
		var rec T
		if err := decodeArgs(args, &rec); err != nil {
			return TraceEvent{}, err
		}
		res, err := fn(st, ctx, rec)
		if err != nil {
			return TraceEvent{}, err
		}
		return writeEvent(res), nil
	}
}

func deleteOp(key string, fn func(*store.Store, context.Context, string) (store.Result, error)) opFunc {
	return func(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error) {
		id, err := stringArg(args, key)
		if err != nil {
			return TraceEvent{}, err
		}
		res, err := fn(st, ctx, id)
		if err != nil {
			return TraceEvent{}, err
		}
		return writeEvent(res), nil
	}
}

func enrollOp(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error) {
	var en records.Enrollment
	if err := decodeArgs(args, &en); err != nil {
		return TraceEvent{}, err
	}
	if en.StudentID == "" || en.CourseID == "" || en.EnrollmentDate == "" {
		return TraceEvent{}, errors.New("enroll requires student_id, course_id and enrollment_date")
	}
	res, err := st.AddEnrollment(ctx, en)
	if err != nil {
		return TraceEvent{}, err
	}
	return writeEvent(res), nil
}

func getOp[T any](key string, fn func(*store.Store, context.Context, string) (T, bool, error)) opFunc {
	return func(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error) {
		id, err := stringArg(args, key)
		if err != nil {
			return TraceEvent{}, err
		}
		rec, found, err := fn(st, ctx, id)
		if err != nil {
			return TraceEvent{}, err
		}
		ev := TraceEvent{Found: &found}
		if found {
			m, err := toMap(rec)
			if err != nil {
				return TraceEvent{}, err
			}
			ev.Record = m
		}
		return ev, nil
	}
}

func listOp[T any](fn func(*store.Store, context.Context) ([]T, error), id func(T) string) opFunc {
	return func(ctx context.Context, st *store.Store, _ map[string]any) (TraceEvent, error) {
		items, err := fn(st, ctx)
		if err != nil {
			return TraceEvent{}, err
		}
		return TraceEvent{IDs: collectIDs(items, id)}, nil
	}
}

func joinOp[T any](key string, fn func(*store.Store, context.Context, string) ([]T, error), id func(T) string) opFunc {
	return func(ctx context.Context, st *store.Store, args map[string]any) (TraceEvent, error) {
		k, err := stringArg(args, key)
		if err != nil {
			return TraceEvent{}, err
		}
		items, err := fn(st, ctx, k)
		if err != nil {
			return TraceEvent{}, err
		}
		return TraceEvent{IDs: collectIDs(items, id)}, nil
	}
}

func writeEvent(res store.Result) TraceEvent {
	return TraceEvent{Status: res.Status.String(), Constraint: res.Constraint}
}

func collectIDs[T any](items []T, id func(T) string) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, id(it))
	}
	return ids
}

// decodeArgs maps scenario args onto a record using its yaml tags.
// Unknown fields are rejected.
func decodeArgs(args map[string]any, out any) error {
	data, err := yaml.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing arg %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("arg %q must be a string, got %T", key, v)
	}
	return s, nil
}

// toMap renders a record as a field map keyed by its yaml names.
func toMap(v any) (map[string]any, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return m, nil
}
