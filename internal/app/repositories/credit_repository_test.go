package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
)

// recordingTx captures the statements appendCredit issues. Unused pgx.Tx
// methods panic via the embedded nil interface.
type recordingTx struct {
	pgx.Tx
	statements []string
	rowErr     error
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.statements = append(t.statements, sql)
	return pgconn.CommandTag{}, nil
}

func (t *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	t.statements = append(t.statements, sql)
	return fakeRow{err: t.rowErr}
}

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.err
}

func TestAppendCredit(t *testing.T) {
	t.Run("deduction locks the user row before the guarded insert", func(t *testing.T) {
		tx := &recordingTx{}
		entry := &models.CreditTransaction{UserID: 1, AmountCents: -500, Kind: models.CreditRedeem}

		require.NoError(t, appendCredit(context.Background(), tx, entry))

		require.Len(t, tx.statements, 2)
		assert.Contains(t, tx.statements[0], "FOR UPDATE")
		assert.Contains(t, tx.statements[0], "users")
		assert.Contains(t, tx.statements[1], "INSERT INTO credit_transactions")
	})

	t.Run("grant inserts without locking", func(t *testing.T) {
		tx := &recordingTx{}
		entry := &models.CreditTransaction{UserID: 1, AmountCents: 1000, Kind: models.CreditGrant}

		require.NoError(t, appendCredit(context.Background(), tx, entry))

		require.Len(t, tx.statements, 1)
		assert.Contains(t, tx.statements[0], "INSERT INTO credit_transactions")
	})

	t.Run("guarded insert returning no row is an overdraft", func(t *testing.T) {
		tx := &recordingTx{rowErr: pgx.ErrNoRows}
		entry := &models.CreditTransaction{UserID: 1, AmountCents: -500, Kind: models.CreditRedeem}

		err := appendCredit(context.Background(), tx, entry)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
	})
}
