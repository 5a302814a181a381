package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation           = "23505"
	pgCodeForeignKeyViolation       = "23503"
	pgCodeCheckViolation            = "23514"
	pgCodeInvalidTextRepresentation = "22P02"
)

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return hasPgErrorCode(err, pgCodeUniqueViolation)
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return hasPgErrorCode(err, pgCodeForeignKeyViolation)
}

// IsCheckViolationError checks if a CHECK constraint rejected the row
func IsCheckViolationError(err error) bool {
	return hasPgErrorCode(err, pgCodeCheckViolation)
}

// IsInvalidTextRepresentationError is returned e.g. for a malformed uuid literal
func IsInvalidTextRepresentationError(err error) bool {
	return hasPgErrorCode(err, pgCodeInvalidTextRepresentation)
}

func hasPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
