package models

import "time"

// Course represents a purchasable course listing.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug" example:"grounding-for-fiery-types"`
	Title       string    `json:"title" db:"title"`
	Summary     string    `json:"summary" db:"summary"`
	Description string    `json:"description" db:"description"`
	ElementSlug *string   `json:"elementSlug,omitempty" db:"element_slug"` // nullable, ties the course to an element
	PriceCents  int64     `json:"priceCents" db:"price_cents"`
	CreditAward int64     `json:"creditAward" db:"credit_award"` // cents credited on completion
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
