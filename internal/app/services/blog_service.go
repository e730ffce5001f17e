package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/validation"
)

// BlogService manages blog posts
type BlogService struct {
	blogRepo *repositories.BlogRepository
	logger   zerolog.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo *repositories.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// ListPublished returns published posts, newest first
func (s *BlogService) ListPublished(ctx context.Context, page, pageSize int) (*dto.BlogPostListResponse, error) {
	return s.list(ctx, true, page, pageSize)
}

// ListAll returns every post, drafts included
func (s *BlogService) ListAll(ctx context.Context, page, pageSize int) (*dto.BlogPostListResponse, error) {
	return s.list(ctx, false, page, pageSize)
}

func (s *BlogService) list(ctx context.Context, publishedOnly bool, page, pageSize int) (*dto.BlogPostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	posts, total, err := s.blogRepo.List(ctx, publishedOnly, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.BlogPostListResponse{
		Posts:      posts,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// GetBySlug returns a published post by slug
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, apperrors.ErrBlogPostNotFound
	}
	return post, nil
}

// GetByID returns a post regardless of publication state
func (s *BlogService) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// Create adds a new post
func (s *BlogService) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:       strings.TrimSpace(req.Title),
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Body:        req.Body,
		ElementSlug: req.ElementSlug,
		IsPublished: req.IsPublished,
		PublishedAt: req.PublishedAt,
	}
	s.applyPublicationTime(post)

	if err := s.validate(post); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postID", post.ID).Str("slug", post.Slug).Msg("Blog post created")
	return post, nil
}

// Update modifies an existing post
func (s *BlogService) Update(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	post.Title = strings.TrimSpace(req.Title)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Body = req.Body
	post.ElementSlug = req.ElementSlug
	post.IsPublished = req.IsPublished
	post.PublishedAt = req.PublishedAt
	s.applyPublicationTime(post)

	if err := s.validate(post); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.blogRepo.Delete(ctx, id)
}

// applyPublicationTime stamps publishedAt on first publication when the
// caller did not set it explicitly.
func (s *BlogService) applyPublicationTime(post *models.BlogPost) {
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
}

func (s *BlogService) validate(post *models.BlogPost) error {
	if !validation.IsValidSlug(post.Slug) {
		return apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}
	if post.ElementSlug != nil && !content.IsElementSlug(*post.ElementSlug) {
		return apperrors.ErrElementNotFound
	}
	return nil
}
