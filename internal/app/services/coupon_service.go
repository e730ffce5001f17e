package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/validation"
)

// CouponService manages promotional codes
type CouponService struct {
	couponRepo *repositories.CouponRepository
	logger     zerolog.Logger
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo *repositories.CouponRepository, logger zerolog.Logger) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// List returns coupons matching the given filters
func (s *CouponService) List(ctx context.Context, filter *dto.CouponFilterRequest, page, pageSize int) (*dto.CouponListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	var search *string
	if filter.Search != nil && *filter.Search != "" {
		normalized := validation.NormalizeCouponCode(*filter.Search)
		search = &normalized
	}

	coupons, total, err := s.couponRepo.List(ctx, filter.Active, filter.Expired, search, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.CouponListResponse{
		Coupons:    coupons,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// GetByID returns a single coupon
func (s *CouponService) GetByID(ctx context.Context, id int64) (*models.Coupon, error) {
	return s.couponRepo.GetByID(ctx, id)
}

// Create adds a new coupon
func (s *CouponService) Create(ctx context.Context, req *dto.CreateCouponRequest) (*models.Coupon, error) {
	code := validation.NormalizeCouponCode(req.Code)
	if !validation.IsValidCouponCode(code) {
		return nil, apperrors.NewValidationError("code must be 3-32 uppercase letters, digits, hyphens or underscores")
	}

	coupon := &models.Coupon{
		Code:          code,
		DiscountType:  models.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		IsActive:      req.IsActive,
	}

	if err := s.validate(coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("couponID", coupon.ID).Str("code", coupon.Code).Msg("Coupon created")
	return coupon, nil
}

// Update modifies an existing coupon. The code is immutable.
func (s *CouponService) Update(ctx context.Context, id int64, req *dto.UpdateCouponRequest) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon.DiscountType = models.DiscountType(req.DiscountType)
	coupon.DiscountValue = req.DiscountValue
	coupon.MaxUses = req.MaxUses
	coupon.ValidFrom = req.ValidFrom
	coupon.ValidUntil = req.ValidUntil
	coupon.IsActive = req.IsActive

	if err := s.validate(coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// ToggleActive flips a coupon's active flag
func (s *CouponService) ToggleActive(ctx context.Context, id int64) (*models.Coupon, error) {
	return s.couponRepo.ToggleActive(ctx, id)
}

// Delete removes a coupon
func (s *CouponService) Delete(ctx context.Context, id int64) error {
	return s.couponRepo.Delete(ctx, id)
}

// Validate previews a coupon against an amount without redeeming it.
// An unknown code is reported as ineligible rather than an error so the
// endpoint does not leak which codes exist.
func (s *CouponService) Validate(ctx context.Context, req *dto.ValidateCouponRequest) (*dto.ValidateCouponResponse, error) {
	code := validation.NormalizeCouponCode(req.Code)

	resp := &dto.ValidateCouponResponse{
		Code:           code,
		RemainingCents: req.AmountCents,
	}

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCouponNotFound) {
			return resp, nil
		}
		return nil, err
	}

	if !coupon.IsEligible(time.Now()) {
		return resp, nil
	}

	discount := coupon.Discount(req.AmountCents)
	resp.Eligible = true
	resp.DiscountCents = discount
	resp.RemainingCents = req.AmountCents - discount
	return resp, nil
}

func (s *CouponService) validate(coupon *models.Coupon) error {
	if coupon.DiscountType == models.DiscountPercent && coupon.DiscountValue > 100 {
		return apperrors.NewValidationError("percentage discount cannot exceed 100")
	}
	if coupon.ValidFrom != nil && coupon.ValidUntil != nil && coupon.ValidUntil.Before(*coupon.ValidFrom) {
		return apperrors.NewValidationError("validUntil must be after validFrom")
	}
	return nil
}
