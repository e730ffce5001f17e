package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/csvutil"
	"github.com/elementa/backend/internal/pkg/helpers"
)

// WaitlistService manages interest signups
type WaitlistService struct {
	waitlistRepo *repositories.WaitlistRepository
	logger       zerolog.Logger
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(waitlistRepo *repositories.WaitlistRepository, logger zerolog.Logger) *WaitlistService {
	return &WaitlistService{
		waitlistRepo: waitlistRepo,
		logger:       logger,
	}
}

// Join records a signup. Duplicate signups for the same email and course
// surface as a conflict.
func (s *WaitlistService) Join(ctx context.Context, req *dto.JoinWaitlistRequest) (*models.WaitlistEntry, error) {
	entry := &models.WaitlistEntry{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		CourseID: req.CourseID,
		Source:   strings.TrimSpace(req.Source),
	}

	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", entry.Email).Msg("Waitlist signup")
	return entry, nil
}

// List returns waitlist entries matching the admin filters
func (s *WaitlistService) List(ctx context.Context, filter *dto.WaitlistFilterRequest, page, pageSize int) (*dto.WaitlistListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	entries, total, err := s.waitlistRepo.List(ctx, filter.CourseID, filter.Search, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.WaitlistListResponse{
		Entries:    entries,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// Delete removes a waitlist entry
func (s *WaitlistService) Delete(ctx context.Context, id int64) error {
	return s.waitlistRepo.Delete(ctx, id)
}

// WaitlistExportHeader is the column order of the waitlist CSV export
var WaitlistExportHeader = []string{"id", "email", "course", "source", "created_at"}

// ExportRows renders all waitlist entries as CSV rows
func (s *WaitlistService) ExportRows(ctx context.Context) ([][]string, error) {
	entries, err := s.waitlistRepo.ListAllForExport(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		course := ""
		if entry.Course != nil {
			course = entry.Course.Slug
		}
		rows = append(rows, []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Email,
			course,
			entry.Source,
			csvutil.FormatTime(entry.CreatedAt),
		})
	}
	return rows, nil
}
