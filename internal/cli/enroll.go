package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
)

// EnrollOptions holds flags for the enroll command.
type EnrollOptions struct {
	*RootOptions
	StudentID string
	CourseID  string
	Date      string
}

// NewEnrollCommand creates the enroll command.
func NewEnrollCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EnrollOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a student in a course",
		Long: `Enroll a student in a course.

Both IDs must name existing records. A student can be enrolled in a
course only once.

Example:
  registrar enroll --student S001 --course CS101
  registrar enroll --student S001 --course CS101 --date 2024-09-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnroll(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.StudentID, "student", "", "student ID")
	cmd.Flags().StringVar(&opts.CourseID, "course", "", "course ID")
	cmd.Flags().StringVar(&opts.Date, "date", "", "enrollment date YYYY-MM-DD (default today)")
	markRequired(cmd, "student", "course")

	return cmd
}

func runEnroll(opts *EnrollOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	ctx := cmd.Context()

	date := opts.Date
	if date == "" {
		date = s.today()
	}
	if err := records.ValidateDate(date); err != nil {
		return invalidInput(s.out, err)
	}

	// The store accepts any pair, so both ids are checked here.
	if _, found, err := s.store.GetStudent(ctx, opts.StudentID); err != nil {
		return storageError("get student", err)
	} else if !found {
		return s.out.Fail(ExitFailure, CodeNotFound,
			fmt.Sprintf("Student with ID %s not found", opts.StudentID), nil)
	}
	if _, found, err := s.store.GetCourse(ctx, opts.CourseID); err != nil {
		return storageError("get course", err)
	} else if !found {
		return s.out.Fail(ExitFailure, CodeNotFound,
			fmt.Sprintf("Course with ID %s not found", opts.CourseID), nil)
	}

	res, err := s.store.EnrollStudent(ctx, opts.StudentID, opts.CourseID, date)
	if err != nil {
		return storageError("enroll student", err)
	}
	s.logger.Debug("enroll", "student_id", opts.StudentID, "course_id", opts.CourseID, "result", res.String())

	enrollment := records.Enrollment{StudentID: opts.StudentID, CourseID: opts.CourseID, EnrollmentDate: date}
	return s.out.Result(fmt.Sprintf("enroll %s in %s", opts.StudentID, opts.CourseID), res,
		fmt.Sprintf("Student %s enrolled in %s.", opts.StudentID, opts.CourseID), enrollment)
}
