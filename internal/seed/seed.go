package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ecamli/registra/internal/app/models"
	appRepos "github.com/ecamli/registra/internal/app/repositories"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/auth"
)

// defaultCourses is the starter catalog created on an empty database
var defaultCourses = []appModels.Course{
	{Code: "MATH101", Name: "Calculus I", CreditHours: 4, Department: "Mathematics"},
	{Code: "ENG101", Name: "English Composition", CreditHours: 3, Department: "Languages"},
	{Code: "PHY101", Name: "General Physics I", CreditHours: 4, Department: "Physics"},
	{Code: "CS101", Name: "Introduction to Programming", CreditHours: 3, Department: "Computer Science"},
	{Code: "HIST101", Name: "World History", CreditHours: 2, Department: "History"},
}

// CreateDefaultData creates the default admin account and a starter course
// catalog if they don't exist. Errors are collected, not fatal: the server
// can start with partial seed data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default Admin User --- //
	_, err := userRepo.GetByEmail(ctx, "admin@registra.app")
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if errors.Is(err, apperrors.ErrNotFound) {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:        "admin@registra.app",
				PasswordHash: hashedPassword,
				FullName:     "System Administrator",
				Role:         appModels.RoleAdmin,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	}

	// --- Starter Course Catalog --- //
	for _, course := range defaultCourses {
		c := course
		err := courseRepo.Create(ctx, &c)
		if err != nil && !errors.Is(err, apperrors.ErrCourseCodeExists) {
			lgr.Error().Err(err).Str("code", c.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
