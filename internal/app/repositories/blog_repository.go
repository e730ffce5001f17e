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

const blogColumns = `id, slug, title, excerpt, body, element_slug, is_published, published_at, created_at, updated_at`

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *pgxpool.Pool
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Body,
		&post.ElementSlug,
		&post.IsPublished,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new blog post
func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (slug, title, excerpt, body, element_slug, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		post.Slug, post.Title, post.Excerpt, post.Body,
		post.ElementSlug, post.IsPublished, post.PublishedAt,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error creating blog post: %w", err)
	}

	return nil
}

// GetByID retrieves a blog post by ID
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanBlogPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("error retrieving blog post: %w", err)
	}
	return post, nil
}

// GetBySlug retrieves a blog post by slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`

	post, err := scanBlogPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("error retrieving blog post by slug: %w", err)
	}
	return post, nil
}

// List retrieves blog posts with pagination. publishedOnly excludes drafts.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.BlogPost, int64, error) {
	where := ""
	order := "ORDER BY created_at DESC"
	if publishedOnly {
		where = "WHERE is_published = TRUE"
		order = "ORDER BY published_at DESC NULLS LAST"
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM blog_posts %s`, where)
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting blog posts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts %s %s OFFSET $1 LIMIT $2`, blogColumns, where, order)
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Update updates an existing blog post
func (r *BlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET slug = $1, title = $2, excerpt = $3, body = $4, element_slug = $5,
		    is_published = $6, published_at = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		post.Slug, post.Title, post.Excerpt, post.Body, post.ElementSlug,
		post.IsPublished, post.PublishedAt, post.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error updating blog post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}

	return nil
}

// Delete deletes a blog post by ID
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting blog post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogPostNotFound
	}
	return nil
}
