package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.co",
		"  padded@example.com  ",
	}
	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"flow-foundations", "a", "course-101", "x-y-z"}
	for _, v := range valid {
		assert.True(t, IsValidSlug(v), v)
	}

	invalid := []string{"", "Flow", "-leading", "trailing-", "double--hyphen", "has space", "under_score"}
	for _, v := range invalid {
		assert.False(t, IsValidSlug(v), v)
	}
}

func TestIsValidCouponCode(t *testing.T) {
	valid := []string{"WELCOME10", "ABC", "SUMMER_2026", "EARLY-BIRD"}
	for _, v := range valid {
		assert.True(t, IsValidCouponCode(v), v)
	}

	invalid := []string{"", "AB", "welcome10", "_LEAD", "-LEAD", "HAS SPACE", "WAYTOOLONGCODE_WAYTOOLONGCODE_123"}
	for _, v := range invalid {
		assert.False(t, IsValidCouponCode(v), v)
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "WELCOME10", NormalizeCouponCode("  welcome10 "))
	assert.Equal(t, "EARLY-BIRD", NormalizeCouponCode("Early-Bird"))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}
