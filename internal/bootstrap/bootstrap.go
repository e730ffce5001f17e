package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/elementa/backend/docs" // Import generated swagger docs
	appControllers "github.com/elementa/backend/internal/app/controllers"
	appMigrations "github.com/elementa/backend/internal/app/migrations"
	appRepos "github.com/elementa/backend/internal/app/repositories"
	appRoutes "github.com/elementa/backend/internal/app/routes"
	appServices "github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/config"
	"github.com/elementa/backend/internal/db"
	appMiddleware "github.com/elementa/backend/internal/middleware"
	pkgAuth "github.com/elementa/backend/internal/pkg/auth"
	"github.com/elementa/backend/internal/pkg/helpers"
	"github.com/elementa/backend/internal/pkg/logger"
	"github.com/elementa/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	AssessmentService *appServices.AssessmentService
	CourseService     *appServices.CourseService
	EventService      *appServices.EventService
	CouponService     *appServices.CouponService
	CreditService     *appServices.CreditService
	EnrollmentService *appServices.EnrollmentService
	WaitlistService   *appServices.WaitlistService
	BlogService       *appServices.BlogService
	StatsService      *appServices.StatsService

	AuthController       *appControllers.AuthController
	ElementController    *appControllers.ElementController
	AssessmentController *appControllers.AssessmentController
	CourseController     *appControllers.CourseController
	EventController      *appControllers.EventController
	BlogController       *appControllers.BlogController
	EnrollmentController *appControllers.EnrollmentController
	CouponController     *appControllers.CouponController
	CreditController     *appControllers.CreditController
	WaitlistController   *appControllers.WaitlistController
	StatsController      *appControllers.StatsController

	AuthMiddleware *appMiddleware.AuthMiddleware
	RateLimiter    *appMiddleware.RateLimiter
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.AssessmentService = appServices.NewAssessmentService(deps.Repos.AssessmentRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.CouponService = appServices.NewCouponService(deps.Repos.CouponRepository, lgr)
	deps.CreditService = appServices.NewCreditService(deps.Repos.CreditRepository, deps.Repos.UserRepository, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EventRepository,
		deps.Repos.CouponRepository,
		deps.Repos.CreditRepository,
		lgr,
	)
	deps.WaitlistService = appServices.NewWaitlistService(deps.Repos.WaitlistRepository, lgr)
	deps.BlogService = appServices.NewBlogService(deps.Repos.BlogRepository, lgr)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.UserRepository,
		deps.Repos.AssessmentRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.WaitlistRepository,
		deps.Repos.CouponRepository,
		deps.Repos.CreditRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ElementController = appControllers.NewElementController()
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.CouponController = appControllers.NewCouponController(deps.CouponService)
	deps.CreditController = appControllers.NewCreditController(deps.CreditService)
	deps.WaitlistController = appControllers.NewWaitlistController(deps.WaitlistService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ElementController,
		deps.AssessmentController,
		deps.CourseController,
		deps.EventController,
		deps.BlogController,
		deps.EnrollmentController,
		deps.CouponController,
		deps.CreditController,
		deps.WaitlistController,
		deps.StatsController,
		deps.AuthMiddleware,
		deps.RateLimiter,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
