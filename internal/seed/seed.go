package seed

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/elementa/backend/internal/app/models"
	appRepos "github.com/elementa/backend/internal/app/repositories"
	"github.com/elementa/backend/internal/pkg/apperrors"
)

// CreateDefaultData creates the default admin account and sample catalog
// content on an empty database. Existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)
	blogRepo := appRepos.NewBlogRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@elementa.app"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     adminEmail,
				Password:  string(hashedPassword),
				FirstName: "Elementa",
				LastName:  "Admin",
				RoleType:  appModels.RoleAdmin,
				IsActive:  true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Sample catalog content --- //
	aquatic := "aquatic"
	fiery := "fiery"

	sampleCourse := &appModels.Course{
		Slug:        "flow-foundations",
		Title:       "Flow Foundations",
		Summary:     "A six week introduction to working with your dominant elemental energy.",
		Description: "Learn the practices that keep your dominant energy in balance, with weekly exercises and guided reflections.",
		ElementSlug: &aquatic,
		PriceCents:  14900,
		CreditAward: 1000,
		IsPublished: true,
	}
	if err := courseRepo.Create(ctx, sampleCourse); err != nil && !errors.Is(err, apperrors.ErrSlugTaken) {
		lgr.Error().Err(err).Msg("Error creating sample course")
		finalErr = errors.Join(finalErr, err)
	}

	sampleEvent := &appModels.Event{
		Slug:        "ignite-workshop",
		Title:       "Ignite Workshop",
		Description: "A hands-on evening workshop on channeling fiery energy into creative work.",
		Location:    "Online",
		StartsAt:    time.Now().AddDate(0, 1, 0),
		Capacity:    50,
		PriceCents:  4900,
		IsPublished: true,
	}
	if err := eventRepo.Create(ctx, sampleEvent); err != nil && !errors.Is(err, apperrors.ErrSlugTaken) {
		lgr.Error().Err(err).Msg("Error creating sample event")
		finalErr = errors.Join(finalErr, err)
	}

	now := time.Now()
	samplePost := &appModels.BlogPost{
		Slug:        "understanding-the-six-energies",
		Title:       "Understanding the Six Energies",
		Excerpt:     "A short introduction to the six elemental energies and how they shape daily life.",
		Body:        "Every person carries a blend of the six elemental energies. This post walks through each one and what a dominant score means for you.",
		ElementSlug: &fiery,
		IsPublished: true,
		PublishedAt: &now,
	}
	if err := blogRepo.Create(ctx, samplePost); err != nil && !errors.Is(err, apperrors.ErrSlugTaken) {
		lgr.Error().Err(err).Msg("Error creating sample blog post")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
