package dberrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

func TestTranslate(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := Translate(&pgconn.PgError{Code: UniqueViolation, ConstraintName: "ux_students_code"})
		assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
		assert.Contains(t, err.Error(), "ux_students_code")
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := Translate(&pgconn.PgError{Code: ForeignKeyViolation})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Same(t, plain, Translate(plain))
		assert.Nil(t, Translate(nil))
	})
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "ux_courses_code"}
	assert.True(t, IsDuplicateConstraintError(err, "ux_courses_code"))
	assert.False(t, IsDuplicateConstraintError(err, "ux_students_code"))
}
