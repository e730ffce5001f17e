package services

// Services defined in this package:
// - AuthService: registration, login and refresh token rotation
// - AssessmentService: quiz question bank, scoring and stored results
// - CourseService: course catalog management
// - EventService: event calendar management
// - CouponService: promotional code management and previews
// - CreditService: account credit ledger
// - EnrollmentService: checkout and enrollment lifecycle
// - WaitlistService: interest signups
// - BlogService: blog post management
// - StatsService: admin dashboard totals
