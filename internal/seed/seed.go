package seed

import (
	"context"
	"errors"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	appRepos "github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// Admin account created on first start
const (
	AdminName     = "System Admin"
	AdminEmail    = "admin@edupath.bd"
	AdminPassword = "admin123"
)

// Stores is what seeding writes to
type Stores struct {
	Users        appRepos.IUserRepository
	Universities appRepos.IUniversityRepository
	Scholarships appRepos.IScholarshipRepository
}

// CreateDefaultData creates the admin account, universities and scholarships if they don't exist.
// Errors are collected so one bad row does not stop the rest.
func CreateDefaultData(ctx context.Context, stores Stores, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin, universities, scholarships)...")
	var finalErr error

	if err := createAdmin(ctx, stores.Users, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	for i := range defaultUniversities {
		university := defaultUniversities[i]
		_, err := stores.Universities.Create(ctx, &university)
		if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("university", university.Name).Msg("Error creating university")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createScholarships(ctx, stores, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}

func createAdmin(ctx context.Context, users appRepos.IUserRepository, lgr zerolog.Logger) error {
	_, err := users.GetByEmail(ctx, AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		lgr.Error().Err(err).Msg("Error looking up admin account")
		return err
	}

	hashed, err := auth.HashPassword(AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{Name: AdminName, Email: AdminEmail, Password: hashed, Role: models.RoleAdmin}
	if _, err := users.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Warn().Str("email", AdminEmail).Msg("Default admin account created, change its password")
	return nil
}

func createScholarships(ctx context.Context, stores Stores, lgr zerolog.Logger) error {
	universities, err := stores.Universities.List(ctx, models.UniversityFilter{})
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing universities for scholarship seeding")
		return err
	}
	universityIDs := make(map[string]int64, len(universities))
	for _, u := range universities {
		universityIDs[u.Name] = u.ID
	}

	existing, err := stores.Scholarships.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing scholarships for seeding")
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Name] = true
	}

	var finalErr error
	for _, def := range defaultScholarships {
		if seen[def.Name] {
			continue
		}

		universityID, ok := universityIDs[def.University]
		if !ok {
			lgr.Warn().Str("scholarship", def.Name).Str("university", def.University).Msg("University missing, scholarship not seeded")
			continue
		}

		deadline, err := time.Parse(dto.DateLayout, def.Deadline)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		scholarship := &models.Scholarship{
			Name:         def.Name,
			UniversityID: universityID,
			Amount:       def.Amount,
			Deadline:     &deadline,
			Description:  def.Description,
		}
		if _, err := stores.Scholarships.Create(ctx, scholarship); err != nil {
			lgr.Error().Err(err).Str("scholarship", def.Name).Msg("Error creating scholarship")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
