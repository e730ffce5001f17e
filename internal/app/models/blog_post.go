package models

import "time"

// BlogPost represents a blog article.
type BlogPost struct {
	ID          int64      `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Body        string     `json:"body" db:"body"`
	ElementSlug *string    `json:"elementSlug,omitempty" db:"element_slug"`
	IsPublished bool       `json:"isPublished" db:"is_published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
