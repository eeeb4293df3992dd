package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
)

func (m *Menu) departmentMenu(ctx context.Context) error {
	return m.submenu(ctx, "DEPARTMENT MANAGEMENT", []action{
		{"Add New Department", m.addDepartment},
		{"View All Departments", m.viewDepartments},
		{"Search Department", m.searchDepartment},
		{"Delete Department", m.deleteDepartment},
	})
}

func (m *Menu) addDepartment(ctx context.Context) error {
	m.title("Add New Department")

	var d records.Department
	var err error
	if d.DeptID, err = m.required("Department ID (e.g., DEPT001)"); err != nil {
		return err
	}
	if d.Name, err = m.required("Department Name"); err != nil {
		return err
	}
	if d.Head, err = m.required("Department Head"); err != nil {
		return err
	}
	if d.Building, err = m.required("Building"); err != nil {
		return err
	}
	if d.ContactEmail, err = m.required("Contact Email"); err != nil {
		return err
	}

	res, err := m.store.AddDepartment(ctx, d)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to add department. ID may already exist.")
		return nil
	}
	m.success("Department %s added successfully!", d.Name)
	return nil
}

func (m *Menu) viewDepartments(ctx context.Context) error {
	m.title("All Departments")
	departments, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		fmt.Fprintln(m.out, "  No departments found.")
		return nil
	}
	report.DepartmentTable(m.out, departments)
	return nil
}

func (m *Menu) searchDepartment(ctx context.Context) error {
	m.title("Search Department")
	id, err := m.required("Enter Department ID")
	if err != nil {
		return err
	}

	d, found, err := m.store.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Department with ID %s not found.", id)
		return nil
	}

	fmt.Fprintln(m.out, "\n  Department Found:")
	fmt.Fprintf(m.out, "  ID: %s\n", d.DeptID)
	fmt.Fprintf(m.out, "  Name: %s\n", d.Name)
	fmt.Fprintf(m.out, "  Head: %s\n", d.Head)
	fmt.Fprintf(m.out, "  Building: %s\n", d.Building)
	fmt.Fprintf(m.out, "  Contact Email: %s\n", d.ContactEmail)
	return nil
}

func (m *Menu) deleteDepartment(ctx context.Context) error {
	m.title("Delete Department")
	id, err := m.required("Enter Department ID")
	if err != nil {
		return err
	}

	d, found, err := m.store.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Department with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Department: %s (%s)\n", d.Name, d.DeptID)
	ok, err := m.confirm("Are you sure you want to delete this department?")
	if err != nil || !ok {
		return err
	}

	res, err := m.store.DeleteDepartment(ctx, id)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to delete department.")
		return nil
	}
	m.success("Department deleted successfully!")
	return nil
}
