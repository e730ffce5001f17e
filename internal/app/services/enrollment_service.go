package services

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/csvutil"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/validation"
)

// EnrollmentService handles checkout and enrollment management
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	eventRepo      *repositories.EventRepository
	couponRepo     *repositories.CouponRepository
	creditRepo     *repositories.CreditRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	eventRepo *repositories.EventRepository,
	couponRepo *repositories.CouponRepository,
	creditRepo *repositories.CreditRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		eventRepo:      eventRepo,
		couponRepo:     couponRepo,
		creditRepo:     creditRepo,
		logger:         logger,
	}
}

// Checkout enrolls the user in a course or event. The total is the list
// price minus the coupon discount minus applied credits, floored at
// zero. Discount applies before credits so a percentage coupon never
// discounts the buyer's own credit.
func (s *EnrollmentService) Checkout(ctx context.Context, userID int64, req *dto.CheckoutRequest) (*models.Enrollment, error) {
	if (req.CourseID == nil) == (req.EventID == nil) {
		return nil, apperrors.NewValidationError("exactly one of courseId and eventId is required")
	}

	priceCents, err := s.resolvePrice(ctx, req)
	if err != nil {
		return nil, err
	}

	var couponID *int64
	var discountCents int64
	if req.CouponCode != nil && *req.CouponCode != "" {
		code := validation.NormalizeCouponCode(*req.CouponCode)
		coupon, err := s.couponRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if !coupon.IsEligible(time.Now()) {
			return nil, apperrors.ErrCouponIneligible
		}
		couponID = &coupon.ID
		discountCents = coupon.Discount(priceCents)
	}

	creditCents, totalCents := checkoutTotals(priceCents, discountCents, req.CreditCents)
	if creditCents > 0 {
		balance, err := s.creditRepo.GetBalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		if balance < creditCents {
			return nil, apperrors.ErrInsufficientCredits
		}
	}

	enrollment := &models.Enrollment{
		UserID:        userID,
		CourseID:      req.CourseID,
		EventID:       req.EventID,
		PriceCents:    priceCents,
		DiscountCents: discountCents,
		CreditCents:   creditCents,
		TotalCents:    totalCents,
		CouponID:      couponID,
		Status:        models.EnrollmentConfirmed,
	}

	var creditTx *models.CreditTransaction
	if creditCents > 0 {
		creditTx = &models.CreditTransaction{
			UserID:      userID,
			AmountCents: -creditCents,
			Kind:        models.CreditRedeem,
			Reason:      "checkout",
		}
	}

	if err := s.enrollmentRepo.PerformCheckout(ctx, enrollment, couponID, creditTx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", userID).
		Int64("enrollmentID", enrollment.ID).
		Int64("totalCents", enrollment.TotalCents).
		Msg("Checkout completed")

	return s.enrollmentRepo.GetByID(ctx, enrollment.ID)
}

// checkoutTotals composes the money pipeline: the discount comes off the
// list price first, then credits apply capped at what remains, and the
// total never goes below zero.
func checkoutTotals(priceCents, discountCents, requestedCreditCents int64) (creditCents, totalCents int64) {
	remaining := priceCents - discountCents
	if remaining < 0 {
		remaining = 0
	}

	creditCents = requestedCreditCents
	if creditCents < 0 {
		creditCents = 0
	}
	if creditCents > remaining {
		creditCents = remaining
	}

	return creditCents, remaining - creditCents
}

func (s *EnrollmentService) resolvePrice(ctx context.Context, req *dto.CheckoutRequest) (int64, error) {
	if req.CourseID != nil {
		course, err := s.courseRepo.GetByID(ctx, *req.CourseID)
		if err != nil {
			return 0, err
		}
		if !course.IsPublished {
			return 0, apperrors.ErrCourseNotFound
		}
		return course.PriceCents, nil
	}

	event, err := s.eventRepo.GetByID(ctx, *req.EventID)
	if err != nil {
		return 0, err
	}
	if !event.IsPublished {
		return 0, apperrors.ErrEventNotFound
	}
	if time.Now().After(event.StartsAt) {
		return 0, apperrors.NewValidationError("event has already started")
	}
	return event.PriceCents, nil
}

// ListOwn returns the user's enrollments, newest first
func (s *EnrollmentService) ListOwn(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userID)
}

// ListAll returns all enrollments matching the admin filters
func (s *EnrollmentService) ListAll(ctx context.Context, filter *dto.EnrollmentFilterRequest, page, pageSize int) (*dto.EnrollmentListResponse, error) {
	if filter.Status != nil {
		switch models.EnrollmentStatus(*filter.Status) {
		case models.EnrollmentConfirmed, models.EnrollmentCompleted, models.EnrollmentCancelled:
		default:
			return nil, apperrors.NewValidationError("unknown enrollment status")
		}
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	enrollments, total, err := s.enrollmentRepo.ListAll(ctx, filter.CourseID, filter.EventID, filter.Status, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.EnrollmentListResponse{
		Enrollments: enrollments,
		Pagination:  helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// Complete marks a confirmed enrollment as completed and awards the
// course's completion credit, if any.
func (s *EnrollmentService) Complete(ctx context.Context, id int64, actorID int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.MarkCompleted(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("enrollmentID", id).Int64("actorID", actorID).Msg("Enrollment completed")
	return enrollment, nil
}

// ExportRows renders all enrollments as CSV rows for the admin export
func (s *EnrollmentService) ExportRows(ctx context.Context) ([][]string, error) {
	enrollments, err := s.enrollmentRepo.ListAllForExport(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, exportEnrollmentRow(e))
	}
	return rows, nil
}

// EnrollmentExportHeader is the column order of the enrollment CSV export
var EnrollmentExportHeader = []string{
	"id", "email", "item_type", "item", "price", "discount", "credits", "total", "status", "created_at",
}

func exportEnrollmentRow(e *models.Enrollment) []string {
	itemType, item := "course", ""
	if e.Course != nil {
		item = e.Course.Slug
	}
	if e.Event != nil {
		itemType, item = "event", e.Event.Slug
	}

	email := ""
	if e.User != nil {
		email = e.User.Email
	}

	return []string{
		strconv.FormatInt(e.ID, 10),
		email,
		itemType,
		item,
		csvutil.FormatCents(e.PriceCents),
		csvutil.FormatCents(e.DiscountCents),
		csvutil.FormatCents(e.CreditCents),
		csvutil.FormatCents(e.TotalCents),
		string(e.Status),
		csvutil.FormatTime(e.CreatedAt),
	}
}
