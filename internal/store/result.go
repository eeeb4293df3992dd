package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Status classifies the outcome of a mutating operation.
type Status int

const (
	// StatusOK means the row was written or removed.
	StatusOK Status = iota
	// StatusConflict means a uniqueness constraint rejected the write.
	StatusConflict
	// StatusNotFound means no row matched the given id.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusConflict:
		return "conflict"
	case StatusNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of an add, update, delete or enroll.
type Result struct {
	Status Status
	// Constraint names the violated constraint's columns when Status is
	// StatusConflict, e.g. "students.email".
	Constraint string
}

// OK reports whether the operation took effect.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

func (r Result) String() string {
	if r.Status == StatusConflict && r.Constraint != "" {
		return fmt.Sprintf("conflict on %s", r.Constraint)
	}
	return r.Status.String()
}

var (
	resultOK       = Result{Status: StatusOK}
	resultNotFound = Result{Status: StatusNotFound}
)

// asConflict converts a SQLite constraint error into a conflict Result.
// Returns false for any other error.
func asConflict(err error) (Result, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return Result{}, false
	}
	return Result{Status: StatusConflict, Constraint: constraintName(sqliteErr.Error())}, true
}

// constraintName extracts the column list from messages such as
// "UNIQUE constraint failed: students.email".
func constraintName(msg string) string {
	if _, after, ok := strings.Cut(msg, "constraint failed: "); ok {
		return after
	}
	return msg
}

// exec runs a single-row write and maps its outcome.
// Zero affected rows means the keyed row did not exist.
func (s *Store) exec(ctx context.Context, op, query string, args ...any) (Result, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r, ok := asConflict(err); ok {
			s.logger.Debug("constraint violation", "op", op, "constraint", r.Constraint)
			return r, nil
		}
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return resultNotFound, nil
	}
	return resultOK, nil
}
