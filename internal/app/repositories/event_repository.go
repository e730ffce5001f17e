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

const eventColumns = `id, slug, title, description, location, starts_at, capacity, price_cents, is_published, created_at, updated_at`

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Slug,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartsAt,
		&event.Capacity,
		&event.PriceCents,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (slug, title, description, location, starts_at, capacity, price_cents, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Slug, event.Title, event.Description, event.Location,
		event.StartsAt, event.Capacity, event.PriceCents, event.IsPublished,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return event, nil
}

// GetBySlug retrieves an event by slug
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event by slug: %w", err)
	}
	return event, nil
}

// List retrieves events with pagination. publishedOnly excludes drafts,
// upcomingOnly excludes events that already started.
func (r *EventRepository) List(ctx context.Context, publishedOnly, upcomingOnly bool, offset uint64, limit int) ([]*models.Event, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if publishedOnly {
		where += " AND is_published = TRUE"
	}
	if upcomingOnly {
		args = append(args, time.Now())
		where += fmt.Sprintf(" AND starts_at > $%d", len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM events %s ORDER BY starts_at ASC OFFSET $%d LIMIT $%d`,
		eventColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update updates an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET slug = $1, title = $2, description = $3, location = $4, starts_at = $5,
		    capacity = $6, price_cents = $7, is_published = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.Slug, event.Title, event.Description, event.Location, event.StartsAt,
		event.Capacity, event.PriceCents, event.IsPublished, event.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugTaken
		}
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("event has registrations and cannot be deleted")
		}
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
