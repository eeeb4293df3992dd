package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/records"
)

// AddFaculty inserts a new faculty member.
// Returns a conflict Result if the id or email is already taken.
func (s *Store) AddFaculty(ctx context.Context, f records.Faculty) (Result, error) {
	return s.exec(ctx, "add faculty", `
		INSERT INTO faculty (`+facultyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, f.FacultyID, f.Name, f.Email, f.Department, f.Position, f.HireDate)
}

// GetFaculty retrieves a faculty member by id.
func (s *Store) GetFaculty(ctx context.Context, facultyID string) (records.Faculty, bool, error) {
	f, found, err := queryOne(ctx, s.db, scanFaculty, `
		SELECT `+facultyColumns+`
		FROM faculty
		WHERE faculty_id = ?
	`, facultyID)
	if err != nil {
		return records.Faculty{}, false, fmt.Errorf("get faculty: %w", err)
	}
	return f, found, nil
}

// ListFaculty returns every faculty member ordered by name.
func (s *Store) ListFaculty(ctx context.Context) ([]records.Faculty, error) {
	faculty, err := queryAll(ctx, s.db, scanFaculty, `
		SELECT `+facultyColumns+`
		FROM faculty
		ORDER BY name ASC, faculty_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return faculty, nil
}

// DeleteFaculty removes a faculty member.
func (s *Store) DeleteFaculty(ctx context.Context, facultyID string) (Result, error) {
	return s.exec(ctx, "delete faculty", `DELETE FROM faculty WHERE faculty_id = ?`, facultyID)
}
