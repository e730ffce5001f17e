package dto

import (
	"github.com/elementa/backend/internal/app/models"
)

// JoinWaitlistRequest represents a public waitlist signup
type JoinWaitlistRequest struct {
	Email    string `json:"email" binding:"required,email"`
	CourseID *int64 `json:"courseId,omitempty" binding:"omitempty,min=1"`
	Source   string `json:"source" binding:"max=80"`
}

// WaitlistListResponse represents a paginated waitlist
type WaitlistListResponse struct {
	Entries    []*models.WaitlistEntry `json:"entries"`
	Pagination PaginationInfo          `json:"pagination"`
}

// WaitlistFilterRequest represents waitlist list filters
type WaitlistFilterRequest struct {
	CourseID *int64  `form:"courseId,omitempty"`
	Search   *string `form:"search,omitempty"` // matches against email
}
