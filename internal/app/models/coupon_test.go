package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCouponIsEligible(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{
			"active coupon with no window",
			Coupon{IsActive: true},
			true,
		},
		{
			"inactive coupon",
			Coupon{IsActive: false},
			false,
		},
		{
			"before valid_from",
			Coupon{IsActive: true, ValidFrom: timePtr(now.Add(time.Hour))},
			false,
		},
		{
			"after valid_until",
			Coupon{IsActive: true, ValidUntil: timePtr(now.Add(-time.Hour))},
			false,
		},
		{
			"inside window",
			Coupon{
				IsActive:   true,
				ValidFrom:  timePtr(now.Add(-time.Hour)),
				ValidUntil: timePtr(now.Add(time.Hour)),
			},
			true,
		},
		{
			"usage cap reached",
			Coupon{IsActive: true, MaxUses: 5, CurrentUses: 5},
			false,
		},
		{
			"under usage cap",
			Coupon{IsActive: true, MaxUses: 5, CurrentUses: 4},
			true,
		},
		{
			"zero max_uses means unlimited",
			Coupon{IsActive: true, MaxUses: 0, CurrentUses: 9999},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.IsEligible(now))
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		amount int64
		want   int64
	}{
		{"10 percent of 10000", Coupon{DiscountType: DiscountPercent, DiscountValue: 10}, 10000, 1000},
		{"percent rounds half up", Coupon{DiscountType: DiscountPercent, DiscountValue: 15}, 1010, 152},
		{"percent rounds down below half", Coupon{DiscountType: DiscountPercent, DiscountValue: 33}, 101, 33},
		{"100 percent", Coupon{DiscountType: DiscountPercent, DiscountValue: 100}, 14900, 14900},
		{"fixed amount", Coupon{DiscountType: DiscountFixed, DiscountValue: 500}, 10000, 500},
		{"fixed capped at amount", Coupon{DiscountType: DiscountFixed, DiscountValue: 20000}, 14900, 14900},
		{"zero amount", Coupon{DiscountType: DiscountPercent, DiscountValue: 50}, 0, 0},
		{"negative amount", Coupon{DiscountType: DiscountFixed, DiscountValue: 500}, -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Discount(tt.amount))
		})
	}
}
