package models

import "time"

// WaitlistEntry is an email capture, optionally tied to a course.
type WaitlistEntry struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CourseID  *int64    `json:"courseId,omitempty" db:"course_id"`
	Source    string    `json:"source" db:"source"` // where the signup came from, e.g. "landing", "course-page"
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relation, populated for admin listings
	Course *Course `json:"course,omitempty"`
}
