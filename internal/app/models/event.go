package models

import "time"

// Event represents a scheduled event with limited capacity.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug" example:"spring-equinox-workshop"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	Capacity    int       `json:"capacity" db:"capacity"` // 0 means unlimited
	PriceCents  int64     `json:"priceCents" db:"price_cents"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
