package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
)

// StatsService aggregates the admin dashboard totals
type StatsService struct {
	userRepo       *repositories.UserRepository
	assessmentRepo *repositories.AssessmentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	waitlistRepo   *repositories.WaitlistRepository
	couponRepo     *repositories.CouponRepository
	creditRepo     *repositories.CreditRepository
	logger         zerolog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	userRepo *repositories.UserRepository,
	assessmentRepo *repositories.AssessmentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	waitlistRepo *repositories.WaitlistRepository,
	couponRepo *repositories.CouponRepository,
	creditRepo *repositories.CreditRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		enrollmentRepo: enrollmentRepo,
		waitlistRepo:   waitlistRepo,
		couponRepo:     couponRepo,
		creditRepo:     creditRepo,
		logger:         logger,
	}
}

// Collect gathers the dashboard totals
func (s *StatsService) Collect(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalAssessmentResults, err = s.assessmentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEnrollments, err = s.enrollmentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RevenueCents, err = s.enrollmentRepo.SumRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.TotalWaitlistEntries, err = s.waitlistRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveCoupons, err = s.couponRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.CreditsOutstandingCents, err = s.creditRepo.SumAll(ctx); err != nil {
		return nil, err
	}
	counts, err := s.assessmentRepo.DominantCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.DominantElementCounts = dominantDistribution(counts)

	return stats, nil
}

// dominantDistribution expands the aggregated counts to cover every element
// in canonical order, zeroes included.
func dominantDistribution(counts map[string]int64) map[string]int64 {
	dist := make(map[string]int64, len(content.ElementSlugs))
	for _, slug := range content.ElementSlugs {
		dist[slug] = counts[slug]
	}
	return dist
}
