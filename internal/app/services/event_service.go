package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/validation"
)

// EventService manages the event calendar
type EventService struct {
	eventRepo *repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository, logger zerolog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ListUpcoming returns published events that have not started yet
func (s *EventService) ListUpcoming(ctx context.Context, page, pageSize int) (*dto.EventListResponse, error) {
	return s.list(ctx, true, true, page, pageSize)
}

// ListAll returns every event, drafts and past events included
func (s *EventService) ListAll(ctx context.Context, page, pageSize int) (*dto.EventListResponse, error) {
	return s.list(ctx, false, false, page, pageSize)
}

func (s *EventService) list(ctx context.Context, publishedOnly, upcomingOnly bool, page, pageSize int) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	events, total, err := s.eventRepo.List(ctx, publishedOnly, upcomingOnly, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// GetBySlug returns a published event by slug
func (s *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

// GetByID returns an event regardless of publication state
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Create adds a new event
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
		PriceCents:  req.PriceCents,
		IsPublished: req.IsPublished,
	}

	if !validation.IsValidSlug(event.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventID", event.ID).Str("slug", event.Slug).Msg("Event created")
	return event, nil
}

// Update modifies an existing event
func (s *EventService) Update(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	event.Title = strings.TrimSpace(req.Title)
	event.Description = req.Description
	event.Location = strings.TrimSpace(req.Location)
	event.StartsAt = req.StartsAt
	event.Capacity = req.Capacity
	event.PriceCents = req.PriceCents
	event.IsPublished = req.IsPublished

	if !validation.IsValidSlug(event.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
