package menu

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/report"
)

func (m *Menu) facultyMenu(ctx context.Context) error {
	return m.submenu(ctx, "FACULTY MANAGEMENT", []action{
		{"Add New Faculty Member", m.addFaculty},
		{"View All Faculty", m.viewFaculty},
		{"Search Faculty Member", m.searchFaculty},
		{"Delete Faculty Member", m.deleteFaculty},
	})
}

func (m *Menu) addFaculty(ctx context.Context) error {
	m.title("Add New Faculty Member")

	var f records.Faculty
	var err error
	if f.FacultyID, err = m.required("Faculty ID (e.g., F001)"); err != nil {
		return err
	}
	if f.Name, err = m.required("Full Name"); err != nil {
		return err
	}
	if f.Email, err = m.required("Email"); err != nil {
		return err
	}
	if f.Department, err = m.required("Department"); err != nil {
		return err
	}
	if f.Position, err = m.required("Position (e.g., Professor, Associate Professor)"); err != nil {
		return err
	}
	if f.HireDate, err = m.date("Hire Date (YYYY-MM-DD)"); err != nil {
		return err
	}

	res, err := m.store.AddFaculty(ctx, f)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to add faculty member. ID or email may already exist.")
		return nil
	}
	m.success("Faculty member %s added successfully!", f.Name)
	return nil
}

func (m *Menu) viewFaculty(ctx context.Context) error {
	m.title("All Faculty Members")
	faculty, err := m.store.ListFaculty(ctx)
	if err != nil {
		return err
	}
	if len(faculty) == 0 {
		fmt.Fprintln(m.out, "  No faculty members found.")
		return nil
	}
	report.FacultyTable(m.out, faculty)
	return nil
}

func (m *Menu) searchFaculty(ctx context.Context) error {
	m.title("Search Faculty Member")
	id, err := m.required("Enter Faculty ID")
	if err != nil {
		return err
	}

	f, found, err := m.store.GetFaculty(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Faculty member with ID %s not found.", id)
		return nil
	}

	fmt.Fprintln(m.out, "\n  Faculty Member Found:")
	fmt.Fprintf(m.out, "  ID: %s\n", f.FacultyID)
	fmt.Fprintf(m.out, "  Name: %s\n", f.Name)
	fmt.Fprintf(m.out, "  Email: %s\n", f.Email)
	fmt.Fprintf(m.out, "  Department: %s\n", f.Department)
	fmt.Fprintf(m.out, "  Position: %s\n", f.Position)
	fmt.Fprintf(m.out, "  Hire Date: %s\n", f.HireDate)
	return nil
}

func (m *Menu) deleteFaculty(ctx context.Context) error {
	m.title("Delete Faculty Member")
	id, err := m.required("Enter Faculty ID")
	if err != nil {
		return err
	}

	f, found, err := m.store.GetFaculty(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.failure("Faculty member with ID %s not found.", id)
		return nil
	}

	fmt.Fprintf(m.out, "\n  Faculty Member: %s (%s)\n", f.Name, f.FacultyID)
	ok, err := m.confirm("Are you sure you want to delete this faculty member?")
	if err != nil || !ok {
		return err
	}

	res, err := m.store.DeleteFaculty(ctx, id)
	if err != nil {
		return err
	}
	if !res.OK() {
		m.failure("Failed to delete faculty member.")
		return nil
	}
	m.success("Faculty member deleted successfully!")
	return nil
}
