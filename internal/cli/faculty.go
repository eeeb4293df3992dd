package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

var facultyNoun = noun{singular: "faculty member", plural: "faculty members", title: "Faculty member"}

// NewFacultyCommand creates the faculty command group.
func NewFacultyCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faculty",
		Short: "Manage faculty members",
	}

	cmd.AddCommand(newFacultyAddCommand(opts))
	cmd.AddCommand(getCommand(opts, facultyNoun, (*store.Store).GetFaculty, report.FacultyTable))
	cmd.AddCommand(listCommand(opts, facultyNoun, (*store.Store).ListFaculty, report.FacultyTable))
	cmd.AddCommand(deleteCommand(opts, facultyNoun, (*store.Store).DeleteFaculty))

	return cmd
}

func newFacultyAddCommand(opts *RootOptions) *cobra.Command {
	var f records.Faculty

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a faculty member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := records.ValidateFaculty(f); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.AddFaculty(cmd.Context(), f)
			if err != nil {
				return storageError("add faculty", err)
			}
			return s.out.Result("add faculty "+f.FacultyID, res,
				fmt.Sprintf("Faculty member %s added.", f.FacultyID), f)
		},
	}

	cmd.Flags().StringVar(&f.FacultyID, "id", "", "faculty ID (e.g. F001)")
	cmd.Flags().StringVar(&f.Name, "name", "", "full name")
	cmd.Flags().StringVar(&f.Email, "email", "", "email address (unique)")
	cmd.Flags().StringVar(&f.Department, "department", "", "department")
	cmd.Flags().StringVar(&f.Position, "position", "", "position (e.g. Professor)")
	cmd.Flags().StringVar(&f.HireDate, "hire-date", "", "hire date YYYY-MM-DD")
	markRequired(cmd, "id", "name", "email", "department", "position", "hire-date")

	return cmd
}
