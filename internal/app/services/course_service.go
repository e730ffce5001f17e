package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/validation"
)

// CourseService manages the course catalog
type CourseService struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListPublished returns published courses for the public catalog
func (s *CourseService) ListPublished(ctx context.Context, page, pageSize int) (*dto.CourseListResponse, error) {
	return s.list(ctx, true, page, pageSize)
}

// ListAll returns every course, drafts included
func (s *CourseService) ListAll(ctx context.Context, page, pageSize int) (*dto.CourseListResponse, error) {
	return s.list(ctx, false, page, pageSize)
}

func (s *CourseService) list(ctx context.Context, publishedOnly bool, page, pageSize int) (*dto.CourseListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	courses, total, err := s.courseRepo.List(ctx, publishedOnly, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.CourseListResponse{
		Courses:    courses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// GetBySlug returns a published course by slug
func (s *CourseService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	course, err := s.courseRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetByID returns a course regardless of publication state
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create adds a new course
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:       strings.TrimSpace(req.Title),
		Summary:     strings.TrimSpace(req.Summary),
		Description: req.Description,
		ElementSlug: req.ElementSlug,
		PriceCents:  req.PriceCents,
		CreditAward: req.CreditAward,
		IsPublished: req.IsPublished,
	}

	if err := s.validate(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Str("slug", course.Slug).Msg("Course created")
	return course, nil
}

// Update modifies an existing course
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	course.Title = strings.TrimSpace(req.Title)
	course.Summary = strings.TrimSpace(req.Summary)
	course.Description = req.Description
	course.ElementSlug = req.ElementSlug
	course.PriceCents = req.PriceCents
	course.CreditAward = req.CreditAward
	course.IsPublished = req.IsPublished

	if err := s.validate(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) validate(course *models.Course) error {
	if !validation.IsValidSlug(course.Slug) {
		return apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}
	if course.ElementSlug != nil && !content.IsElementSlug(*course.ElementSlug) {
		return apperrors.ErrElementNotFound
	}
	return nil
}
