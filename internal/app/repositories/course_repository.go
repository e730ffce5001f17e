package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/dberrors"
)

const courseColumns = `id, slug, title, summary, description, element_slug, price_cents, credit_award, is_published, created_at, updated_at`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Slug,
		&course.Title,
		&course.Summary,
		&course.Description,
		&course.ElementSlug,
		&course.PriceCents,
		&course.CreditAward,
		&course.IsPublished,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (slug, title, summary, description, element_slug, price_cents, credit_award, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Slug, course.Title, course.Summary, course.Description,
		course.ElementSlug, course.PriceCents, course.CreditAward, course.IsPublished,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetBySlug retrieves a course by slug
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE slug = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by slug: %w", err)
	}
	return course, nil
}

// List retrieves courses with pagination. When publishedOnly is set,
// unpublished courses are excluded.
func (r *CourseRepository) List(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.Course, int64, error) {
	where := ""
	if publishedOnly {
		where = "WHERE is_published = TRUE"
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM courses %s`, where)
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM courses %s ORDER BY created_at DESC OFFSET $1 LIMIT $2`, courseColumns, where)
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET slug = $1, title = $2, summary = $3, description = $4, element_slug = $5,
		    price_cents = $6, credit_award = $7, is_published = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Slug, course.Title, course.Summary, course.Description, course.ElementSlug,
		course.PriceCents, course.CreditAward, course.IsPublished, course.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("course has enrollments and cannot be deleted")
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
