package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/dberrors"
)

// EnrollmentRepository handles enrollments and the checkout transaction
type EnrollmentRepository struct {
	db      *pgxpool.Pool
	coupons *CouponRepository
	credits *CreditRepository
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool, coupons *CouponRepository, credits *CreditRepository) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:      db,
		coupons: coupons,
		credits: credits,
	}
}

// PerformCheckout records an enrollment atomically with its side effects:
// the coupon redemption (when couponID is set) and the credit deduction
// (when creditTx is set). Event capacity and duplicate enrollment are
// enforced inside the same transaction.
func (r *EnrollmentRepository) PerformCheckout(ctx context.Context, enrollment *models.Enrollment, couponID *int64, creditTx *models.CreditTransaction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Duplicate check: one non-cancelled enrollment per user and item.
	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE user_id = $1
			  AND status != 'CANCELLED'
			  AND ((course_id IS NOT DISTINCT FROM $2) AND (event_id IS NOT DISTINCT FROM $3))
		)`,
		enrollment.UserID, enrollment.CourseID, enrollment.EventID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking existing enrollment: %w", err)
	}
	if exists {
		return apperrors.ErrAlreadyEnrolled
	}

	// Capacity check for events, under a row lock on the event.
	if enrollment.EventID != nil {
		var capacity int
		if err := tx.QueryRow(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, *enrollment.EventID).Scan(&capacity); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event: %w", err)
		}
		if capacity > 0 {
			var taken int64
			err := tx.QueryRow(ctx,
				`SELECT COUNT(*) FROM enrollments WHERE event_id = $1 AND status != 'CANCELLED'`,
				*enrollment.EventID).Scan(&taken)
			if err != nil {
				return fmt.Errorf("error counting event registrations: %w", err)
			}
			if taken >= int64(capacity) {
				return apperrors.ErrEventFull
			}
		}
	}

	if couponID != nil {
		if err := r.coupons.RedeemInTx(ctx, tx, *couponID, time.Now()); err != nil {
			return err
		}
	}

	if creditTx != nil {
		if err := r.credits.AppendInTx(ctx, tx, creditTx); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO enrollments (user_id, course_id, event_id, price_cents, discount_cents, credit_cents, total_cents, coupon_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		enrollment.UserID, enrollment.CourseID, enrollment.EventID,
		enrollment.PriceCents, enrollment.DiscountCents, enrollment.CreditCents,
		enrollment.TotalCents, enrollment.CouponID, enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return translateEnrollmentInsertError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit checkout: %w", err)
	}
	return nil
}

// activeEnrollmentIndex backs the one-active-enrollment-per-user-and-item
// rule; a violation means a concurrent checkout won the race.
const activeEnrollmentIndex = "idx_enrollments_user_item_active"

// translateEnrollmentInsertError maps constraint violations from the
// enrollment INSERT to domain errors.
func translateEnrollmentInsertError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, activeEnrollmentIndex):
		return apperrors.ErrAlreadyEnrolled
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrResourceNotFound
	default:
		return fmt.Errorf("error creating enrollment: %w", err)
	}
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, event_id, price_cents, discount_cents, credit_cents, total_cents, coupon_id, status, created_at, updated_at
		FROM enrollments
		WHERE id = $1
	`

	var e models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.CourseID, &e.EventID,
		&e.PriceCents, &e.DiscountCents, &e.CreditCents, &e.TotalCents,
		&e.CouponID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return &e, nil
}

// ListByUser returns a user's enrollments, newest first, with item relations.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	query := enrollmentListQuery + ` WHERE e.user_id = $1 ORDER BY e.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	return scanEnrollmentRows(rows)
}

const enrollmentListQuery = `
	SELECT e.id, e.user_id, e.course_id, e.event_id, e.price_cents, e.discount_cents, e.credit_cents, e.total_cents, e.coupon_id, e.status, e.created_at, e.updated_at,
	       c.id, c.slug, c.title,
	       ev.id, ev.slug, ev.title,
	       u.id, u.email, u.first_name, u.last_name
	FROM enrollments e
	LEFT JOIN courses c ON c.id = e.course_id
	LEFT JOIN events ev ON ev.id = e.event_id
	JOIN users u ON u.id = e.user_id
`

func scanEnrollmentRows(rows pgx.Rows) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var courseID, eventID *int64
		var courseSlug, courseTitle, eventSlug, eventTitle *string
		var user models.User
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CourseID, &e.EventID,
			&e.PriceCents, &e.DiscountCents, &e.CreditCents, &e.TotalCents,
			&e.CouponID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&courseID, &courseSlug, &courseTitle,
			&eventID, &eventSlug, &eventTitle,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
		); err != nil {
			return nil, err
		}
		if courseID != nil {
			e.Course = &models.Course{ID: *courseID, Slug: *courseSlug, Title: *courseTitle}
		}
		if eventID != nil {
			e.Event = &models.Event{ID: *eventID, Slug: *eventSlug, Title: *eventTitle}
		}
		e.User = &user
		enrollments = append(enrollments, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListAll returns enrollments for the admin view with pagination and filters.
func (r *EnrollmentRepository) ListAll(ctx context.Context, courseID, eventID *int64, status *string, offset uint64, limit int) ([]*models.Enrollment, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if courseID != nil {
		args = append(args, *courseID)
		where += fmt.Sprintf(" AND e.course_id = $%d", len(args))
	}
	if eventID != nil {
		args = append(args, *eventID)
		where += fmt.Sprintf(" AND e.event_id = $%d", len(args))
	}
	if status != nil && *status != "" {
		args = append(args, *status)
		where += fmt.Sprintf(" AND e.status = $%d", len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM enrollments e %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`%s %s ORDER BY e.created_at DESC OFFSET $%d LIMIT $%d`,
		enrollmentListQuery, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrollments, err := scanEnrollmentRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

// MarkCompleted transitions a confirmed enrollment to COMPLETED and, when the
// course carries a credit award, appends the AWARD ledger entry atomically.
func (r *EnrollmentRepository) MarkCompleted(ctx context.Context, id int64, actorID int64) (*models.Enrollment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var e models.Enrollment
	err = tx.QueryRow(ctx, `
		UPDATE enrollments
		SET status = 'COMPLETED', updated_at = NOW()
		WHERE id = $1 AND status = 'CONFIRMED'
		RETURNING id, user_id, course_id, event_id, price_cents, discount_cents, credit_cents, total_cents, coupon_id, status, created_at, updated_at
	`, id).Scan(
		&e.ID, &e.UserID, &e.CourseID, &e.EventID,
		&e.PriceCents, &e.DiscountCents, &e.CreditCents, &e.TotalCents,
		&e.CouponID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("enrollment is not in a completable state")
		}
		return nil, fmt.Errorf("error completing enrollment: %w", err)
	}

	if e.CourseID != nil {
		var award int64
		if err := tx.QueryRow(ctx, `SELECT credit_award FROM courses WHERE id = $1`, *e.CourseID).Scan(&award); err != nil {
			return nil, fmt.Errorf("error reading course credit award: %w", err)
		}
		if award > 0 {
			creditTx := &models.CreditTransaction{
				UserID:      e.UserID,
				AmountCents: award,
				Kind:        models.CreditAward,
				Reason:      "course completion award",
				ActorID:     &actorID,
			}
			if err := r.credits.AppendInTx(ctx, tx, creditTx); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}
	return &e, nil
}

// Count returns the total number of non-cancelled enrollments
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE status != 'CANCELLED'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// SumRevenue returns the sum of totals over non-cancelled enrollments
func (r *EnrollmentRepository) SumRevenue(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cents), 0) FROM enrollments WHERE status != 'CANCELLED'`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing revenue: %w", err)
	}
	return total, nil
}

// ListAllForExport returns every enrollment with relations for CSV export
func (r *EnrollmentRepository) ListAllForExport(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, enrollmentListQuery+` ORDER BY e.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments for export: %w", err)
	}
	defer rows.Close()

	return scanEnrollmentRows(rows)
}
