package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

var studentNoun = noun{singular: "student", plural: "students", title: "Student"}

// NewStudentCommand creates the student command group.
func NewStudentCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	cmd.AddCommand(newStudentAddCommand(opts))
	cmd.AddCommand(getCommand(opts, studentNoun, (*store.Store).GetStudent, report.StudentTable))
	cmd.AddCommand(listCommand(opts, studentNoun, (*store.Store).ListStudents, report.StudentTable))
	cmd.AddCommand(newStudentUpdateCommand(opts))
	cmd.AddCommand(deleteCommand(opts, studentNoun, (*store.Store).DeleteStudent))
	cmd.AddCommand(newStudentCoursesCommand(opts))

	return cmd
}

func newStudentAddCommand(opts *RootOptions) *cobra.Command {
	var st records.Student

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add a student. The enrollment date defaults to today.

Example:
  registrar student add --id S001 --name "John Doe" --email john@student.edu \
    --major "Computer Science" --year 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if st.EnrollmentDate == "" {
				st.EnrollmentDate = s.today()
			}
			if err := records.ValidateStudent(st); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.AddStudent(cmd.Context(), st)
			if err != nil {
				return storageError("add student", err)
			}
			return s.out.Result("add student "+st.StudentID, res,
				fmt.Sprintf("Student %s added.", st.StudentID), st)
		},
	}

	cmd.Flags().StringVar(&st.StudentID, "id", "", "student ID (e.g. S001)")
	cmd.Flags().StringVar(&st.Name, "name", "", "full name")
	cmd.Flags().StringVar(&st.Email, "email", "", "email address (unique)")
	cmd.Flags().StringVar(&st.Major, "major", "", "major")
	cmd.Flags().IntVar(&st.Year, "year", 0, "year of study (1-4)")
	cmd.Flags().StringVar(&st.EnrollmentDate, "date", "", "enrollment date YYYY-MM-DD (default today)")
	markRequired(cmd, "id", "name", "email", "major", "year")

	return cmd
}

func newStudentUpdateCommand(opts *RootOptions) *cobra.Command {
	var changes records.Student

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a student",
		Long: `Replace a student's name, email, major or year.
Fields whose flags are not given keep their current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			st, found, err := s.store.GetStudent(cmd.Context(), id)
			if err != nil {
				return storageError("get student", err)
			}
			if !found {
				return s.out.Fail(ExitFailure, CodeNotFound,
					fmt.Sprintf("Student with ID %s not found", id), nil)
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				st.Name = changes.Name
			}
			if flags.Changed("email") {
				st.Email = changes.Email
			}
			if flags.Changed("major") {
				st.Major = changes.Major
			}
			if flags.Changed("year") {
				st.Year = changes.Year
			}
			if err := records.ValidateStudentDetails(st); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.UpdateStudent(cmd.Context(), st)
			if err != nil {
				return storageError("update student", err)
			}
			return s.out.Result("update student "+id, res,
				fmt.Sprintf("Student %s updated.", id), st)
		},
	}

	cmd.Flags().StringVar(&changes.Name, "name", "", "new full name")
	cmd.Flags().StringVar(&changes.Email, "email", "", "new email address")
	cmd.Flags().StringVar(&changes.Major, "major", "", "new major")
	cmd.Flags().IntVar(&changes.Year, "year", 0, "new year of study (1-4)")

	return cmd
}

func newStudentCoursesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "courses <id>",
		Short: "List the courses a student is enrolled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			courses, err := s.store.StudentCourses(cmd.Context(), args[0])
			if err != nil {
				return storageError("list student courses", err)
			}
			return emitList(s.out, "courses", courses, report.CourseTable)
		},
	}
}
