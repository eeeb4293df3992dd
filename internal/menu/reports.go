package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/report"
)

func (m *Menu) reportsMenu(ctx context.Context) error {
	return m.submenu(ctx, "REPORTS & STATISTICS", []action{
		{"Total Counts Summary", m.showSummary},
		{"Students by Major", m.showStudentsByMajor},
		{"Courses by Department", m.showCoursesByDepartment},
		{"All Events by Date", m.showEventsByDate},
	})
}

func (m *Menu) showSummary(ctx context.Context) error {
	totals, err := report.Summarize(ctx, m.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	report.WriteSummary(m.out, totals)
	return nil
}

func (m *Menu) showStudentsByMajor(ctx context.Context) error {
	groups, err := report.StudentsByMajor(ctx, m.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	report.WriteStudentsByMajor(m.out, groups)
	return nil
}

func (m *Menu) showCoursesByDepartment(ctx context.Context) error {
	groups, err := report.CoursesByDepartment(ctx, m.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	report.WriteCoursesByDepartment(m.out, groups)
	return nil
}

func (m *Menu) showEventsByDate(ctx context.Context) error {
	events, err := report.EventsByDate(ctx, m.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	report.WriteEventsByDate(m.out, events)
	return nil
}
