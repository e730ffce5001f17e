package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
)

// CreditRepository handles the append-only credit ledger
type CreditRepository struct {
	db *pgxpool.Pool
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *pgxpool.Pool) *CreditRepository {
	return &CreditRepository{
		db: db,
	}
}

// insertQuery guards against overdraft: a negative entry only lands when the
// current balance covers it.
const creditInsertQuery = `
	INSERT INTO credit_transactions (user_id, amount_cents, kind, reason, actor_id)
	SELECT $1, $2, $3, $4, $5
	WHERE $2 >= 0
	   OR COALESCE((SELECT SUM(amount_cents) FROM credit_transactions WHERE user_id = $1), 0) + $2 >= 0
	RETURNING id, created_at
`

// Append adds a ledger entry in its own transaction. Returns
// ErrInsufficientCredits when a negative entry would take the balance below
// zero.
func (r *CreditRepository) Append(ctx context.Context, entry *models.CreditTransaction) error {
	dbtx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start credit transaction: %w", err)
	}
	defer dbtx.Rollback(ctx)

	if err := appendCredit(ctx, dbtx, entry); err != nil {
		return err
	}

	if err := dbtx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit credit transaction: %w", err)
	}
	return nil
}

// AppendInTx adds a ledger entry inside an existing transaction.
func (r *CreditRepository) AppendInTx(ctx context.Context, dbtx pgx.Tx, entry *models.CreditTransaction) error {
	return appendCredit(ctx, dbtx, entry)
}

func appendCredit(ctx context.Context, dbtx pgx.Tx, entry *models.CreditTransaction) error {
	// Deductions lock the user row first so two concurrent spends cannot
	// both read the same balance and overdraw it.
	if entry.AmountCents < 0 {
		if _, err := dbtx.Exec(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, entry.UserID); err != nil {
			return fmt.Errorf("error locking user for credit deduction: %w", err)
		}
	}

	err := dbtx.QueryRow(ctx, creditInsertQuery,
		entry.UserID, entry.AmountCents, entry.Kind, entry.Reason, entry.ActorID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrInsufficientCredits
		}
		return fmt.Errorf("error appending credit transaction: %w", err)
	}
	return nil
}

// GetBalance returns the current balance for a user
func (r *CreditRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM credit_transactions WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("error computing credit balance: %w", err)
	}
	return balance, nil
}

// ListByUser returns a user's ledger, newest first
func (r *CreditRepository) ListByUser(ctx context.Context, userID int64) ([]*models.CreditTransaction, error) {
	query := `
		SELECT id, user_id, amount_cents, kind, reason, actor_id, created_at
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing credit transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.CreditTransaction
	for rows.Next() {
		var tx models.CreditTransaction
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.AmountCents,
			&tx.Kind,
			&tx.Reason,
			&tx.ActorID,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// SumAll returns the total outstanding credits across all users
func (r *CreditRepository) SumAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM credit_transactions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing credits: %w", err)
	}
	return total, nil
}
