package models

// RoleType defines the user role type
type RoleType string

const (
	RoleMember RoleType = "MEMBER"
	RoleAdmin  RoleType = "ADMIN"
)

// DiscountType defines how a coupon reduces a price
type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// EnrollmentStatus defines the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentConfirmed EnrollmentStatus = "CONFIRMED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// CreditKind classifies a credit ledger entry
type CreditKind string

const (
	CreditGrant  CreditKind = "GRANT"
	CreditRedeem CreditKind = "REDEEM"
	CreditRefund CreditKind = "REFUND"
	CreditAward  CreditKind = "AWARD"
)
