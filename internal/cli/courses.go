package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

var courseNoun = noun{singular: "course", plural: "courses", title: "Course"}

// NewCourseCommand creates the course command group.
func NewCourseCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(newCourseAddCommand(opts))
	cmd.AddCommand(getCommand(opts, courseNoun, (*store.Store).GetCourse, report.CourseTable))
	cmd.AddCommand(listCommand(opts, courseNoun, (*store.Store).ListCourses, report.CourseTable))
	cmd.AddCommand(deleteCommand(opts, courseNoun, (*store.Store).DeleteCourse))
	cmd.AddCommand(newCourseStudentsCommand(opts))

	return cmd
}

func newCourseAddCommand(opts *RootOptions) *cobra.Command {
	var c records.Course

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := records.ValidateCourse(c); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.AddCourse(cmd.Context(), c)
			if err != nil {
				return storageError("add course", err)
			}
			return s.out.Result("add course "+c.CourseID, res,
				fmt.Sprintf("Course %s added.", c.CourseID), c)
		},
	}

	cmd.Flags().StringVar(&c.CourseID, "id", "", "course ID (e.g. CS101)")
	cmd.Flags().StringVar(&c.Name, "name", "", "course name")
	cmd.Flags().StringVar(&c.Department, "department", "", "department")
	cmd.Flags().IntVar(&c.Credits, "credits", 0, "credits (1-6)")
	cmd.Flags().StringVar(&c.Professor, "professor", "", "professor")
	cmd.Flags().StringVar(&c.Semester, "semester", "", "semester (e.g. Fall 2024)")
	markRequired(cmd, "id", "name", "department", "credits", "professor", "semester")

	return cmd
}

func newCourseStudentsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "students <id>",
		Short: "List the students enrolled in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			students, err := s.store.CourseStudents(cmd.Context(), args[0])
			if err != nil {
				return storageError("list course students", err)
			}
			return emitList(s.out, "students", students, report.RosterTable)
		},
	}
}
