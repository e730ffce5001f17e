package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/dberrors"
)

// WaitlistRepository handles database operations for waitlist entries
type WaitlistRepository struct {
	db *pgxpool.Pool
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
	}
}

// Create inserts a new waitlist entry
func (r *WaitlistRepository) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist_entries (email, course_id, source)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, entry.Email, entry.CourseID, entry.Source).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrWaitlistDuplicate
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating waitlist entry: %w", err)
	}

	return nil
}

// List retrieves waitlist entries with pagination and optional filters,
// including the course relation for admin listings.
func (r *WaitlistRepository) List(ctx context.Context, courseID *int64, search *string, offset uint64, limit int) ([]*models.WaitlistEntry, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if courseID != nil {
		args = append(args, *courseID)
		where += fmt.Sprintf(" AND w.course_id = $%d", len(args))
	}
	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		where += fmt.Sprintf(" AND w.email ILIKE $%d", len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM waitlist_entries w %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting waitlist entries: %w", err)
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT w.id, w.email, w.course_id, w.source, w.created_at, c.id, c.slug, c.title
		FROM waitlist_entries w
		LEFT JOIN courses c ON c.id = w.course_id
		%s ORDER BY w.created_at DESC OFFSET $%d LIMIT $%d`,
		where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing waitlist entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.WaitlistEntry
	for rows.Next() {
		var entry models.WaitlistEntry
		var cID *int64
		var cSlug, cTitle *string
		if err := rows.Scan(&entry.ID, &entry.Email, &entry.CourseID, &entry.Source, &entry.CreatedAt,
			&cID, &cSlug, &cTitle); err != nil {
			return nil, 0, err
		}
		if cID != nil {
			entry.Course = &models.Course{ID: *cID, Slug: *cSlug, Title: *cTitle}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete removes a waitlist entry by ID
func (r *WaitlistRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM waitlist_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting waitlist entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrWaitlistNotFound
	}
	return nil
}

// Count returns the total number of waitlist entries
func (r *WaitlistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waitlist_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting waitlist entries: %w", err)
	}
	return count, nil
}

// ListAllForExport returns every waitlist entry with its course for CSV export
func (r *WaitlistRepository) ListAllForExport(ctx context.Context) ([]*models.WaitlistEntry, error) {
	query := `
		SELECT w.id, w.email, w.course_id, w.source, w.created_at, c.id, c.slug, c.title
		FROM waitlist_entries w
		LEFT JOIN courses c ON c.id = w.course_id
		ORDER BY w.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing waitlist entries for export: %w", err)
	}
	defer rows.Close()

	var entries []*models.WaitlistEntry
	for rows.Next() {
		var entry models.WaitlistEntry
		var cID *int64
		var cSlug, cTitle *string
		if err := rows.Scan(&entry.ID, &entry.Email, &entry.CourseID, &entry.Source, &entry.CreatedAt,
			&cID, &cSlug, &cTitle); err != nil {
			return nil, err
		}
		if cID != nil {
			entry.Course = &models.Course{ID: *cID, Slug: *cSlug, Title: *cTitle}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
