package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var (
	// ErrReferenceNotFound is returned when a write references a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrConstraintViolation is returned when a write breaks a check constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)

func pgErrorCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}
	return "", nil
}
