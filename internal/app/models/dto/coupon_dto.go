package dto

import (
	"time"

	"github.com/elementa/backend/internal/app/models"
)

// CreateCouponRequest represents coupon creation input
type CreateCouponRequest struct {
	Code          string     `json:"code" binding:"required,min=3,max=32"`
	DiscountType  string     `json:"discountType" binding:"required,oneof=PERCENT FIXED"`
	DiscountValue int64      `json:"discountValue" binding:"required,min=1"`
	MaxUses       int64      `json:"maxUses" binding:"min=0"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidUntil    *time.Time `json:"validUntil,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// UpdateCouponRequest represents coupon update input
type UpdateCouponRequest struct {
	DiscountType  string     `json:"discountType" binding:"required,oneof=PERCENT FIXED"`
	DiscountValue int64      `json:"discountValue" binding:"required,min=1"`
	MaxUses       int64      `json:"maxUses" binding:"min=0"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidUntil    *time.Time `json:"validUntil,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// CouponListResponse represents a paginated coupon list
type CouponListResponse struct {
	Coupons    []*models.Coupon `json:"coupons"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CouponFilterRequest represents coupon list filters
type CouponFilterRequest struct {
	Active  *bool   `form:"active,omitempty"`
	Expired *bool   `form:"expired,omitempty"` // past the validity window or usage cap
	Search  *string `form:"search,omitempty"`  // matches against code
}

// ValidateCouponRequest previews a coupon against an amount
type ValidateCouponRequest struct {
	Code        string `json:"code" binding:"required"`
	AmountCents int64  `json:"amountCents" binding:"required,min=1"`
}

// ValidateCouponResponse is the discount preview
type ValidateCouponResponse struct {
	Code           string `json:"code"`
	Eligible       bool   `json:"eligible"`
	DiscountCents  int64  `json:"discountCents"`
	RemainingCents int64  `json:"remainingCents"`
}
