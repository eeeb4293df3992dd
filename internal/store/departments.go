package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// AddDepartment inserts a new department.
func (s *Store) AddDepartment(ctx context.Context, d records.Department) (Result, error) {
	return s.exec(ctx, "add department", `
		INSERT INTO departments (`+departmentColumns+`)
		VALUES (?, ?, ?, ?, ?)
	`, d.DeptID, d.Name, d.Head, d.Building, d.ContactEmail)
}

// GetDepartment retrieves a department by id.
func (s *Store) GetDepartment(ctx context.Context, deptID string) (records.Department, bool, error) {
	d, found, err := queryOne(ctx, s.db, scanDepartment, `
		SELECT `+departmentColumns+`
		FROM departments
		WHERE dept_id = ?
	`, deptID)
	if err != nil {
		return records.Department{}, false, fmt.Errorf("get department: %w", err)
	}
	return d, found, nil
}

// ListDepartments returns every department ordered by name.
func (s *Store) ListDepartments(ctx context.Context) ([]records.Department, error) {
	departments, err := queryAll(ctx, s.db, scanDepartment, `
		SELECT `+departmentColumns+`
		FROM departments
		ORDER BY name ASC, dept_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// DeleteDepartment removes a department.
func (s *Store) DeleteDepartment(ctx context.Context, deptID string) (Result, error) {
	return s.exec(ctx, "delete department", `DELETE FROM departments WHERE dept_id = ?`, deptID)
}
