package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateEmail is returned when an insert violates the users email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned by updates targeting a row that no longer exists.
	ErrNotFound = errors.New("record not found")
)

// DB is the subset of pgxpool.Pool the repositories use. Kept minimal so a
// mock pool can be substituted in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
