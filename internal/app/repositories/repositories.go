package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	CourseRepository     *CourseRepository
	EventRepository      *EventRepository
	CouponRepository     *CouponRepository
	CreditRepository     *CreditRepository
	EnrollmentRepository *EnrollmentRepository
	WaitlistRepository   *WaitlistRepository
	AssessmentRepository *AssessmentRepository
	BlogRepository       *BlogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	coupons := NewCouponRepository(db)
	credits := NewCreditRepository(db)

	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EventRepository:      NewEventRepository(db),
		CouponRepository:     coupons,
		CreditRepository:     credits,
		EnrollmentRepository: NewEnrollmentRepository(db, coupons, credits),
		WaitlistRepository:   NewWaitlistRepository(db),
		AssessmentRepository: NewAssessmentRepository(db),
		BlogRepository:       NewBlogRepository(db),
	}
}
