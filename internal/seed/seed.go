// Package seed creates the data the portal cannot run without.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/repositories"
	"github.com/luct-faculty/portal/internal/pkg/auth"
)

// defaultFaculties are the faculties offered for registration and
// course creation. Seeding is idempotent.
var defaultFaculties = []string{
	"Faculty of Information & Communication Technology",
	"Faculty of Business & Globalisation",
	"Faculty of Design & Innovation",
	"Faculty of Communication, Media & Broadcasting",
	"Faculty of Architecture & the Built Environment",
	"Faculty of Creativity in Tourism & Hospitality",
}

const defaultPLEmail = "pl@luct.ac.ls"

// CreateDefaultData seeds the faculties and a default Program Leader
// account so the portal is usable on first start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := repositories.NewFacultyRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (faculties, program leader)...")
	var finalErr error

	for _, name := range defaultFaculties {
		if err := facultyRepo.CreateIfAbsent(ctx, name); err != nil {
			lgr.Error().Err(err).Str("faculty", name).Msg("Error seeding faculty")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := seedProgramLeader(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedProgramLeader(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultPLEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default program leader")
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("SEED_PL_PASSWORD")
	if password == "" {
		lgr.Warn().Msg("SEED_PL_PASSWORD not set, skipping default program leader")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default program leader password")
		return err
	}

	id, err := userRepo.Create(ctx, &models.User{
		Name:         "Program Leader",
		Email:        defaultPLEmail,
		PasswordHash: hash,
		Role:         models.RolePL,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default program leader")
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", defaultPLEmail).Msg("Default program leader created")
	return nil
}
