package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError

	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes the stores care about.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// Translate wraps constraint violations in the matching apperrors sentinel so
// callers above the store never inspect driver errors. Other errors pass through.
func Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case UniqueViolation:
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrResourceAlreadyExists)
	case ForeignKeyViolation:
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrConflict)
	default:
		return err
	}
}
