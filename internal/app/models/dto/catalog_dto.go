package dto

import (
	"time"

	"github.com/elementa/backend/internal/app/models"
)

// CreateCourseRequest represents course creation input
type CreateCourseRequest struct {
	Slug        string  `json:"slug" binding:"required,min=3,max=80"`
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Summary     string  `json:"summary" binding:"required,max=500"`
	Description string  `json:"description" binding:"required"`
	ElementSlug *string `json:"elementSlug,omitempty"`
	PriceCents  int64   `json:"priceCents" binding:"min=0"`
	CreditAward int64   `json:"creditAward" binding:"min=0"`
	IsPublished bool    `json:"isPublished"`
}

// UpdateCourseRequest represents course update input
type UpdateCourseRequest struct {
	Slug        string  `json:"slug" binding:"required,min=3,max=80"`
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Summary     string  `json:"summary" binding:"required,max=500"`
	Description string  `json:"description" binding:"required"`
	ElementSlug *string `json:"elementSlug,omitempty"`
	PriceCents  int64   `json:"priceCents" binding:"min=0"`
	CreditAward int64   `json:"creditAward" binding:"min=0"`
	IsPublished bool    `json:"isPublished"`
}

// CourseListResponse represents a paginated course list
type CourseListResponse struct {
	Courses    []*models.Course `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CreateEventRequest represents event creation input
type CreateEventRequest struct {
	Slug        string    `json:"slug" binding:"required,min=3,max=80"`
	Title       string    `json:"title" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required,max=200"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	Capacity    int       `json:"capacity" binding:"min=0"`
	PriceCents  int64     `json:"priceCents" binding:"min=0"`
	IsPublished bool      `json:"isPublished"`
}

// UpdateEventRequest represents event update input
type UpdateEventRequest struct {
	Slug        string    `json:"slug" binding:"required,min=3,max=80"`
	Title       string    `json:"title" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required,max=200"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	Capacity    int       `json:"capacity" binding:"min=0"`
	PriceCents  int64     `json:"priceCents" binding:"min=0"`
	IsPublished bool      `json:"isPublished"`
}

// EventListResponse represents a paginated event list
type EventListResponse struct {
	Events     []*models.Event `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}
