package dto

import (
	"github.com/elementa/backend/internal/app/models"
)

// CheckoutRequest represents an enrollment purchase.
// Exactly one of CourseID and EventID must be set.
type CheckoutRequest struct {
	CourseID    *int64  `json:"courseId,omitempty" binding:"omitempty,min=1"`
	EventID     *int64  `json:"eventId,omitempty" binding:"omitempty,min=1"`
	CouponCode  *string `json:"couponCode,omitempty"`
	CreditCents int64   `json:"creditCents" binding:"min=0"` // credits the buyer wants applied
}

// CheckoutResponse returns the recorded enrollment with its price breakdown
type CheckoutResponse struct {
	Enrollment *models.Enrollment `json:"enrollment"`
}

// EnrollmentListResponse represents a paginated enrollment list
type EnrollmentListResponse struct {
	Enrollments []*models.Enrollment `json:"enrollments"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// EnrollmentFilterRequest represents admin enrollment list filters
type EnrollmentFilterRequest struct {
	CourseID *int64  `form:"courseId,omitempty"`
	EventID  *int64  `form:"eventId,omitempty"`
	Status   *string `form:"status,omitempty"`
}
