package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/elementa/backend/internal/pkg/apperrors"
)

func TestTranslateEnrollmentInsertError(t *testing.T) {
	t.Run("duplicate active enrollment maps to already enrolled", func(t *testing.T) {
		err := translateEnrollmentInsertError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: activeEnrollmentIndex,
		})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("foreign key violation maps to not found", func(t *testing.T) {
		err := translateEnrollmentInsertError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("unique violation on another constraint is not already enrolled", func(t *testing.T) {
		err := translateEnrollmentInsertError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "some_other_index",
		})
		assert.NotErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := translateEnrollmentInsertError(cause)
		assert.ErrorIs(t, err, cause)
	})
}
