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

// AssessmentRepository handles stored assessment results
type AssessmentRepository struct {
	db *pgxpool.Pool
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
	}
}

// Create stores a scored result. Scores go into a JSONB column.
func (r *AssessmentRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	query := `
		INSERT INTO assessment_results (public_id, email, scores, dominant_element)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.PublicID, result.Email, result.Scores, result.DominantElement,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("error storing assessment result: %w", err)
	}

	return nil
}

// GetByPublicID retrieves a result by its public UUID
func (r *AssessmentRepository) GetByPublicID(ctx context.Context, publicID string) (*models.AssessmentResult, error) {
	query := `
		SELECT id, public_id, email, scores, dominant_element, created_at
		FROM assessment_results
		WHERE public_id = $1
	`

	var result models.AssessmentResult
	err := r.db.QueryRow(ctx, query, publicID).Scan(
		&result.ID,
		&result.PublicID,
		&result.Email,
		&result.Scores,
		&result.DominantElement,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("error retrieving assessment result: %w", err)
	}

	return &result, nil
}

// Count returns the total number of stored results
func (r *AssessmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assessment_results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting assessment results: %w", err)
	}
	return count, nil
}

// DominantCounts returns how many results landed on each dominant element
func (r *AssessmentRepository) DominantCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT dominant_element, COUNT(*) FROM assessment_results GROUP BY dominant_element`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating dominant elements: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var element string
		var count int64
		if err := rows.Scan(&element, &count); err != nil {
			return nil, err
		}
		counts[element] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
