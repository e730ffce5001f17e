package models

import "time"

// AssessmentResult stores one completed self-assessment.
// Scores holds the per-element percentages keyed by element slug.
type AssessmentResult struct {
	ID              int64          `json:"id" db:"id"`
	PublicID        string         `json:"publicId" db:"public_id"` // UUID handed to the (possibly anonymous) submitter
	Email           *string        `json:"email,omitempty" db:"email"`
	Scores          map[string]int `json:"scores" db:"scores"` // stored as JSONB
	DominantElement string         `json:"dominantElement" db:"dominant_element"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}
