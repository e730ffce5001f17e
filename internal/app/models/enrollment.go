package models

import "time"

// Enrollment records a purchase of a course or an event seat,
// including the price breakdown at the time of checkout.
// Exactly one of CourseID and EventID is set.
type Enrollment struct {
	ID            int64            `json:"id" db:"id"`
	UserID        int64            `json:"userId" db:"user_id"`
	CourseID      *int64           `json:"courseId,omitempty" db:"course_id"`
	EventID       *int64           `json:"eventId,omitempty" db:"event_id"`
	PriceCents    int64            `json:"priceCents" db:"price_cents"`
	DiscountCents int64            `json:"discountCents" db:"discount_cents"`
	CreditCents   int64            `json:"creditCents" db:"credit_cents"`
	TotalCents    int64            `json:"totalCents" db:"total_cents"`
	CouponID      *int64           `json:"couponId,omitempty" db:"coupon_id"`
	Status        EnrollmentStatus `json:"status" db:"status"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations, populated for listings
	Course *Course `json:"course,omitempty"`
	Event  *Event  `json:"event,omitempty"`
	User   *User   `json:"user,omitempty"`
}
