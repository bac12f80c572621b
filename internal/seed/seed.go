// Package seed creates default accounts and catalogue entries on first run.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/deniz/campuscare/internal/app/models"
	appRepos "github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/auth"
)

type defaultUser struct {
	username string
	email    string
	password string
	role     appModels.RoleType
}

var defaultUsers = []defaultUser{
	{username: "admin1", email: "admin1@uniss.com", password: "admin1.pw", role: appModels.RoleAdmin},
	{username: "admin2", email: "admin2@uniss.com", password: "admin2.pw", role: appModels.RoleAdmin},
	{username: "user1", email: "user1@uniss.com", password: "user1.pw", role: appModels.RoleNormal},
	{username: "user2", email: "user2@uniss.com", password: "user2.pw", role: appModels.RoleNormal},
	{username: "user3", email: "user3@uniss.com", password: "user3.pw", role: appModels.RoleNormal},
}

var defaultResources = []struct {
	title       string
	description string
}{
	{title: "Counselling drop-in hours", description: "The student counselling office runs drop-in sessions Monday to Friday, 10:00 to 16:00, no booking required."},
	{title: "Exam stress toolkit", description: "Short guides on planning revision, sleep and managing exam anxiety, collected by the wellbeing team."},
	{title: "Out-of-hours support lines", description: "Phone and text support available when the campus services are closed, including weekends and holidays."},
}

// CreateDefaultData inserts default users and resources when they are absent.
// Existing rows are left alone so repeated startups stay idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	resourceRepo := appRepos.NewResourceRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, du := range defaultUsers {
		exists, err := userRepo.UsernameExists(ctx, du.username)
		if err != nil {
			lgr.Error().Err(err).Str("username", du.username).Msg("Error checking default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(du.password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Username:     du.username,
			Email:        du.email,
			PasswordHash: hash,
			Role:         du.role,
		}
		if err := userRepo.CreateWithDetail(ctx, user); err != nil {
			// A concurrent startup may have won the race, that is fine
			if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("username", du.username).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("username", du.username).Str("role", string(du.role)).Msg("Default user created")
	}

	existing, err := resourceRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing resources for seeding")
		return errors.Join(finalErr, err)
	}
	if len(existing) == 0 {
		for _, dr := range defaultResources {
			resource := &appModels.Resource{
				Title:       dr.title,
				Description: dr.description,
			}
			if err := resourceRepo.Create(ctx, resource); err != nil {
				lgr.Error().Err(err).Str("title", dr.title).Msg("Error creating default resource")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("count", len(defaultResources)).Msg("Default resources created")
	}

	return finalErr
}
