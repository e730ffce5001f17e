package models

import "time"

// Coupon represents a promotional discount code.
type Coupon struct {
	ID           int64        `json:"id" db:"id"`
	Code         string       `json:"code" db:"code" example:"WELCOME10"`
	DiscountType DiscountType `json:"discountType" db:"discount_type"`
	// DiscountValue is a percentage (1-100) for PERCENT coupons
	// and an amount in cents for FIXED coupons.
	DiscountValue int64      `json:"discountValue" db:"discount_value"`
	MaxUses       int64      `json:"maxUses" db:"max_uses"` // 0 means unlimited
	CurrentUses   int64      `json:"currentUses" db:"current_uses"`
	ValidFrom     *time.Time `json:"validFrom,omitempty" db:"valid_from"`
	ValidUntil    *time.Time `json:"validUntil,omitempty" db:"valid_until"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsEligible reports whether the coupon can be redeemed at the given time.
func (c *Coupon) IsEligible(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	if c.MaxUses > 0 && c.CurrentUses >= c.MaxUses {
		return false
	}
	return true
}

// Discount computes the discount in cents for the given amount.
// The result never exceeds the amount.
func (c *Coupon) Discount(amountCents int64) int64 {
	if amountCents <= 0 {
		return 0
	}

	var discount int64
	switch c.DiscountType {
	case DiscountPercent:
		// Round half up on the cent.
		discount = (amountCents*c.DiscountValue + 50) / 100
	case DiscountFixed:
		discount = c.DiscountValue
	}

	if discount > amountCents {
		discount = amountCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
