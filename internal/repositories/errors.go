package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the postgres error code for a unique constraint violation.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint
// violation. Services translate this signal into a typed conflict outcome.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
