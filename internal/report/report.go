// Package report builds the registrar's summaries and listings.
//
// Builders read through a Reader and return plain data; the Write* functions
// render that data as text. Majors and departments are grouped by a key that
// ignores case and Unicode normalization form, so "Computer Science" and
// "computer science" land in one group labelled with the first spelling seen.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/registrar/internal/records"
)

// Reader is the subset of the store that reports read from.
type Reader interface {
	ListStudents(ctx context.Context) ([]records.Student, error)
	ListCourses(ctx context.Context) ([]records.Course, error)
	ListEvents(ctx context.Context) ([]records.Event, error)
	ListFaculty(ctx context.Context) ([]records.Faculty, error)
	ListDepartments(ctx context.Context) ([]records.Department, error)
}

// Totals holds the number of records of each kind.
type Totals struct {
	Students    int `json:"students"`
	Courses     int `json:"courses"`
	Events      int `json:"events"`
	Faculty     int `json:"faculty"`
	Departments int `json:"departments"`
}

// StudentGroup is the students sharing one major.
type StudentGroup struct {
	Major    string            `json:"major"`
	Students []records.Student `json:"students"`
}

// CourseGroup is the courses offered by one department.
type CourseGroup struct {
	Department string           `json:"department"`
	Courses    []records.Course `json:"courses"`
}

// Summarize counts every kind of record.
func Summarize(ctx context.Context, r Reader) (Totals, error) {
	var t Totals

	students, err := r.ListStudents(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("summary: %w", err)
	}
	t.Students = len(students)

	courses, err := r.ListCourses(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("summary: %w", err)
	}
	t.Courses = len(courses)

	events, err := r.ListEvents(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("summary: %w", err)
	}
	t.Events = len(events)

	faculty, err := r.ListFaculty(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("summary: %w", err)
	}
	t.Faculty = len(faculty)

	departments, err := r.ListDepartments(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("summary: %w", err)
	}
	t.Departments = len(departments)

	return t, nil
}

// StudentsByMajor groups students by major. Groups are sorted by key;
// members keep the store's name order.
func StudentsByMajor(ctx context.Context, r Reader) ([]StudentGroup, error) {
	students, err := r.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("students by major: %w", err)
	}

	keys, labels, members := group(students, func(s records.Student) string { return s.Major })
	out := make([]StudentGroup, 0, len(keys))
	for _, k := range keys {
		out = append(out, StudentGroup{Major: labels[k], Students: members[k]})
	}
	return out, nil
}

// CoursesByDepartment groups courses by department. Groups are sorted by
// key; members keep the store's name order.
func CoursesByDepartment(ctx context.Context, r Reader) ([]CourseGroup, error) {
	courses, err := r.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("courses by department: %w", err)
	}

	keys, labels, members := group(courses, func(c records.Course) string { return c.Department })
	out := make([]CourseGroup, 0, len(keys))
	for _, k := range keys {
		out = append(out, CourseGroup{Department: labels[k], Courses: members[k]})
	}
	return out, nil
}

// EventsByDate returns every event, most recent date first.
func EventsByDate(ctx context.Context, r Reader) ([]records.Event, error) {
	events, err := r.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("events by date: %w", err)
	}
	return events, nil
}

var folder = cases.Fold()

// groupKey folds case and normalizes to NFC.
func groupKey(s string) string {
	return folder.String(norm.NFC.String(strings.TrimSpace(s)))
}

// group partitions items by the folded key of field. It returns the sorted
// keys, the first-seen label for each key and the members in input order.
func group[T any](items []T, field func(T) string) ([]string, map[string]string, map[string][]T) {
	labels := make(map[string]string)
	members := make(map[string][]T)
	for _, it := range items {
		raw := field(it)
		k := groupKey(raw)
		if _, ok := labels[k]; !ok {
			labels[k] = norm.NFC.String(strings.TrimSpace(raw))
		}
		members[k] = append(members[k], it)
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, labels, members
}
