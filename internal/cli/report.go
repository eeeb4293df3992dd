package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/report"
)

// NewReportCommand creates the report command group.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show reports and statistics",
	}

	cmd.AddCommand(reportCommand(opts, "summary", "Total record counts",
		report.Summarize, report.WriteSummary))
	cmd.AddCommand(reportCommand(opts, "majors", "Students grouped by major",
		report.StudentsByMajor, report.WriteStudentsByMajor))
	cmd.AddCommand(reportCommand(opts, "departments", "Courses grouped by department",
		report.CoursesByDepartment, report.WriteCoursesByDepartment))
	cmd.AddCommand(reportCommand(opts, "events", "All events, latest first",
		report.EventsByDate, report.WriteEventsByDate))

	return cmd
}

// reportCommand builds one report subcommand from its query and text renderer.
func reportCommand[T any](
	opts *RootOptions,
	use, short string,
	build func(context.Context, report.Reader) (T, error),
	text func(io.Writer, T),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := build(cmd.Context(), s.store)
			if err != nil {
				return storageError("report "+use, err)
			}
			return s.out.Emit(data, func(w io.Writer) {
				text(w, data)
			})
		},
	}
}
