package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/dberrors"
)

const couponColumns = `id, code, discount_type, discount_value, max_uses, current_uses, valid_from, valid_until, is_active, created_at, updated_at`

// CouponRepository handles database operations for coupons
type CouponRepository struct {
	db *pgxpool.Pool
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{
		db: db,
	}
}

func scanCoupon(row pgx.Row) (*models.Coupon, error) {
	var coupon models.Coupon
	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountType,
		&coupon.DiscountValue,
		&coupon.MaxUses,
		&coupon.CurrentUses,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.IsActive,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Create inserts a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	query := `
		INSERT INTO coupons (code, discount_type, discount_value, max_uses, valid_from, valid_until, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, current_uses, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		coupon.Code, coupon.DiscountType, coupon.DiscountValue, coupon.MaxUses,
		coupon.ValidFrom, coupon.ValidUntil, coupon.IsActive,
	).Scan(&coupon.ID, &coupon.CurrentUses, &coupon.CreatedAt, &coupon.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCouponCodeTaken
		}
		return fmt.Errorf("error creating coupon: %w", err)
	}

	return nil
}

// GetByID retrieves a coupon by ID
func (r *CouponRepository) GetByID(ctx context.Context, id int64) (*models.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, fmt.Errorf("error retrieving coupon: %w", err)
	}
	return coupon, nil
}

// GetByCode retrieves a coupon by its code
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, fmt.Errorf("error retrieving coupon by code: %w", err)
	}
	return coupon, nil
}

// List retrieves coupons with pagination and optional filters.
func (r *CouponRepository) List(ctx context.Context, active, expired *bool, search *string, offset uint64, limit int) ([]*models.Coupon, int64, error) {
	where, args := couponListWhere(active, expired, search)

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM coupons %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting coupons: %w", err)
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM coupons %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		couponColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*models.Coupon
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, err
		}
		coupons = append(coupons, coupon)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return coupons, total, nil
}

// couponListWhere builds the list filter predicate. A coupon is expired when
// its validity window has passed or its usage cap is reached.
func couponListWhere(active, expired *bool, search *string) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if active != nil {
		args = append(args, *active)
		where += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	if expired != nil {
		if *expired {
			where += " AND (valid_until < NOW() OR (max_uses > 0 AND current_uses >= max_uses))"
		} else {
			where += " AND (valid_until IS NULL OR valid_until >= NOW()) AND (max_uses = 0 OR current_uses < max_uses)"
		}
	}
	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		where += fmt.Sprintf(" AND code ILIKE $%d", len(args))
	}
	return where, args
}

// Update updates a coupon's terms. The code itself is immutable.
func (r *CouponRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	query := `
		UPDATE coupons
		SET discount_type = $1, discount_value = $2, max_uses = $3,
		    valid_from = $4, valid_until = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		coupon.DiscountType, coupon.DiscountValue, coupon.MaxUses,
		coupon.ValidFrom, coupon.ValidUntil, coupon.IsActive, coupon.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating coupon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCouponNotFound
	}

	return nil
}

// ToggleActive flips the is_active flag and returns the updated coupon
func (r *CouponRepository) ToggleActive(ctx context.Context, id int64) (*models.Coupon, error) {
	query := `
		UPDATE coupons
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + couponColumns

	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, fmt.Errorf("error toggling coupon: %w", err)
	}
	return coupon, nil
}

// Delete deletes a coupon by ID
func (r *CouponRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("coupon has been redeemed and cannot be deleted")
		}
		return fmt.Errorf("error deleting coupon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCouponNotFound
	}
	return nil
}

// redeemQuery increments current_uses only while the coupon is still eligible,
// so concurrent checkouts can never push usage past the cap.
const redeemQuery = `
	UPDATE coupons
	SET current_uses = current_uses + 1, updated_at = NOW()
	WHERE id = $1
	  AND is_active = TRUE
	  AND (valid_from IS NULL OR valid_from <= $2)
	  AND (valid_until IS NULL OR valid_until >= $2)
	  AND (max_uses = 0 OR current_uses < max_uses)
`

// Redeem consumes one use of the coupon. Returns ErrCouponIneligible when the
// coupon exists but fails the eligibility predicate.
func (r *CouponRepository) Redeem(ctx context.Context, id int64, now time.Time) error {
	return redeemCoupon(ctx, r.db, id, now)
}

// RedeemInTx consumes one use of the coupon inside an existing transaction.
func (r *CouponRepository) RedeemInTx(ctx context.Context, tx pgx.Tx, id int64, now time.Time) error {
	return redeemCoupon(ctx, tx, id, now)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func redeemCoupon(ctx context.Context, db execer, id int64, now time.Time) error {
	cmdTag, err := db.Exec(ctx, redeemQuery, id, now)
	if err != nil {
		return fmt.Errorf("error redeeming coupon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCouponIneligible
	}
	return nil
}

// CountActive returns the number of currently active coupons
func (r *CouponRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM coupons WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active coupons: %w", err)
	}
	return count, nil
}
