package utils

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsPGUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsPGUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsPGForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsPGForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// IsPGUnavailable reports whether err means the database could not be reached in time:
// a failed connect, a timeout or a cancelled request.
func IsPGUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func pgCode(err error) string {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code
	}
	return ""
}
