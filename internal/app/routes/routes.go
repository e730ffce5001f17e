package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/controllers"
	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	elementController *controllers.ElementController,
	assessmentController *controllers.AssessmentController,
	courseController *controllers.CourseController,
	eventController *controllers.EventController,
	blogController *controllers.BlogController,
	enrollmentController *controllers.EnrollmentController,
	couponController *controllers.CouponController,
	creditController *controllers.CreditController,
	waitlistController *controllers.WaitlistController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	elements := v1.Group("/elements")
	{
		elements.GET("", elementController.ListElements)
		elements.GET("/:slug", elementController.GetElement)
		elements.GET("/:slug/compatibility", elementController.GetCompatibility)
	}

	assessment := v1.Group("/assessment")
	{
		assessment.GET("/questions", assessmentController.GetQuestions)
		assessment.POST("/submit", rateLimiter.Middleware(), assessmentController.Submit)
		assessment.GET("/results/:publicId", assessmentController.GetResult)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:slug", courseController.GetCourse)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:slug", eventController.GetEvent)
	}

	blog := v1.Group("/blog")
	{
		blog.GET("", blogController.ListPosts)
		blog.GET("/:slug", blogController.GetPost)
	}

	// Waitlist signup is anonymous and rate limited.
	v1.POST("/waitlist", rateLimiter.Middleware(), waitlistController.JoinWaitlist)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/me", authController.GetProfile)
		authenticated.GET("/me/enrollments", enrollmentController.ListOwnEnrollments)
		authenticated.GET("/me/credits", creditController.GetOwnLedger)

		authenticated.POST("/enrollments/checkout", enrollmentController.Checkout)
		authenticated.POST("/coupons/validate", couponController.ValidateCoupon)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		adminCourses := admin.Group("/courses")
		{
			adminCourses.GET("", courseController.ListAllCourses)
			adminCourses.POST("", courseController.CreateCourse)
			adminCourses.PUT("/:id", courseController.UpdateCourse)
			adminCourses.DELETE("/:id", courseController.DeleteCourse)
		}

		adminEvents := admin.Group("/events")
		{
			adminEvents.GET("", eventController.ListAllEvents)
			adminEvents.POST("", eventController.CreateEvent)
			adminEvents.PUT("/:id", eventController.UpdateEvent)
			adminEvents.DELETE("/:id", eventController.DeleteEvent)
		}

		adminBlog := admin.Group("/blog")
		{
			adminBlog.GET("", blogController.ListAllPosts)
			adminBlog.POST("", blogController.CreatePost)
			adminBlog.PUT("/:id", blogController.UpdatePost)
			adminBlog.DELETE("/:id", blogController.DeletePost)
		}

		adminCoupons := admin.Group("/coupons")
		{
			adminCoupons.GET("", couponController.ListCoupons)
			adminCoupons.POST("", couponController.CreateCoupon)
			adminCoupons.GET("/:id", couponController.GetCoupon)
			adminCoupons.PUT("/:id", couponController.UpdateCoupon)
			adminCoupons.POST("/:id/toggle", couponController.ToggleCoupon)
			adminCoupons.DELETE("/:id", couponController.DeleteCoupon)
		}

		adminCredits := admin.Group("/credits")
		{
			adminCredits.POST("", creditController.GrantCredit)
			adminCredits.GET("/:userId", creditController.GetUserLedger)
		}

		adminEnrollments := admin.Group("/enrollments")
		{
			adminEnrollments.GET("", enrollmentController.ListAllEnrollments)
			adminEnrollments.GET("/export", enrollmentController.ExportEnrollments)
			adminEnrollments.POST("/:id/complete", enrollmentController.CompleteEnrollment)
		}

		adminWaitlist := admin.Group("/waitlist")
		{
			adminWaitlist.GET("", waitlistController.ListWaitlist)
			adminWaitlist.GET("/export", waitlistController.ExportWaitlist)
			adminWaitlist.DELETE("/:id", waitlistController.DeleteWaitlistEntry)
		}

		admin.GET("/stats", statsController.GetStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
