package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
	"github.com/roach88/registrar/internal/store"
)

var departmentNoun = noun{singular: "department", plural: "departments", title: "Department"}

// NewDepartmentCommand creates the department command group.
func NewDepartmentCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}

	cmd.AddCommand(newDepartmentAddCommand(opts))
	cmd.AddCommand(getCommand(opts, departmentNoun, (*store.Store).GetDepartment, report.DepartmentTable))
	cmd.AddCommand(listCommand(opts, departmentNoun, (*store.Store).ListDepartments, report.DepartmentTable))
	cmd.AddCommand(deleteCommand(opts, departmentNoun, (*store.Store).DeleteDepartment))

	return cmd
}

func newDepartmentAddCommand(opts *RootOptions) *cobra.Command {
	var d records.Department

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := records.ValidateDepartment(d); err != nil {
				return invalidInput(s.out, err)
			}

			res, err := s.store.AddDepartment(cmd.Context(), d)
			if err != nil {
				return storageError("add department", err)
			}
			return s.out.Result("add department "+d.DeptID, res,
				fmt.Sprintf("Department %s added.", d.DeptID), d)
		},
	}

	cmd.Flags().StringVar(&d.DeptID, "id", "", "department ID (e.g. CS)")
	cmd.Flags().StringVar(&d.Name, "name", "", "department name")
	cmd.Flags().StringVar(&d.Head, "head", "", "department head")
	cmd.Flags().StringVar(&d.Building, "building", "", "building")
	cmd.Flags().StringVar(&d.ContactEmail, "email", "", "contact email")
	markRequired(cmd, "id", "name", "head", "building", "email")

	return cmd
}
