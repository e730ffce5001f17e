package dto

import (
	"time"

	"github.com/elementa/backend/internal/app/models"
)

// CreateBlogPostRequest represents blog post creation input
type CreateBlogPostRequest struct {
	Slug        string     `json:"slug" binding:"required,min=3,max=120"`
	Title       string     `json:"title" binding:"required,min=3,max=200"`
	Excerpt     string     `json:"excerpt" binding:"required,max=500"`
	Body        string     `json:"body" binding:"required"`
	ElementSlug *string    `json:"elementSlug,omitempty"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// UpdateBlogPostRequest represents blog post update input
type UpdateBlogPostRequest struct {
	Slug        string     `json:"slug" binding:"required,min=3,max=120"`
	Title       string     `json:"title" binding:"required,min=3,max=200"`
	Excerpt     string     `json:"excerpt" binding:"required,max=500"`
	Body        string     `json:"body" binding:"required"`
	ElementSlug *string    `json:"elementSlug,omitempty"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// BlogPostListResponse represents a paginated blog post list
type BlogPostListResponse struct {
	Posts      []*models.BlogPost `json:"posts"`
	Pagination PaginationInfo     `json:"pagination"`
}
