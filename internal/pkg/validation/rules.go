package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern is deliberately permissive; the DB unique index is the
	// real gate against junk duplicates.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// SlugPattern: lowercase, digits and single hyphens, no leading/trailing hyphen
	SlugPattern = `^[a-z0-9]+(?:-[a-z0-9]+)*$`

	// CouponCodePattern: uppercase alphanumeric plus _ and -, 3-32 chars, must
	// start alphanumeric
	CouponCodePattern = `^[A-Z0-9][A-Z0-9_\-]{2,31}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Slug       *regexp.Regexp
	CouponCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Slug:       regexp.MustCompile(SlugPattern),
	CouponCode: regexp.MustCompile(CouponCodePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// IsValidSlug reports whether the value is a well-formed URL slug.
func IsValidSlug(value string) bool {
	return CompiledPatterns.Slug.MatchString(value)
}

// IsValidCouponCode reports whether the value is a well-formed coupon code.
func IsValidCouponCode(value string) bool {
	return CompiledPatterns.CouponCode.MatchString(value)
}

// NormalizeCouponCode upper-cases and trims a user-supplied coupon code before
// validation or lookup.
func NormalizeCouponCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
