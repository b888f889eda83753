package services

import (
	"context"
	"fmt"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// Subjects used when a decided record points at a university or scholarship
// that has since been deleted
const (
	fallbackUniversitySubject  = "your selected university"
	fallbackScholarshipSubject = "your selected scholarship"
)

// AdminVerifier confirms an actor is an administrator
type AdminVerifier interface {
	ValidateAdmin(ctx context.Context, actor authz.Actor) error
}

// StatusChange is the outcome of an admin decision
type StatusChange struct {
	ID       int64
	Status   models.Status
	Dispatch *DispatchResult
}

// ApplicationService manages university and scholarship applications
type ApplicationService struct {
	apps            repositories.IApplicationRepository
	scholarshipApps repositories.IScholarshipApplicationRepository
	universities    repositories.IUniversityRepository
	scholarships    repositories.IScholarshipRepository
	notifier        Notifier
	authz           AdminVerifier
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	apps repositories.IApplicationRepository,
	scholarshipApps repositories.IScholarshipApplicationRepository,
	universities repositories.IUniversityRepository,
	scholarships repositories.IScholarshipRepository,
	notifier Notifier,
	verifier AdminVerifier,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		apps:            apps,
		scholarshipApps: scholarshipApps,
		universities:    universities,
		scholarships:    scholarships,
		notifier:        notifier,
		authz:           verifier,
		logger:          logger,
	}
}

// resolveApplicant picks the applicant, defaulting to the actor
func resolveApplicant(actor authz.Actor, requested int64) (int64, error) {
	userID := requested
	if userID == 0 {
		userID = actor.UserID
	}
	if err := authz.CanAccessUser(actor, userID); err != nil {
		return 0, err
	}
	return userID, nil
}

// Apply records a pending application to a university
func (s *ApplicationService) Apply(ctx context.Context, actor authz.Actor, req *dto.CreateApplicationRequest) (*models.UniversityApplication, error) {
	userID, err := resolveApplicant(actor, req.UserID)
	if err != nil {
		return nil, err
	}

	university, err := s.universities.GetByID(ctx, req.UniversityID)
	if err != nil {
		return nil, err
	}

	app := &models.UniversityApplication{UserID: userID, UniversityID: university.ID}
	if _, err := s.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	app.UniversityName = &university.Name

	s.logger.Info().
		Int64("applicationID", app.ID).
		Int64("userID", userID).
		Int64("universityID", university.ID).
		Msg("University application submitted")

	return app, nil
}

// ApplyForScholarship records a pending scholarship application
func (s *ApplicationService) ApplyForScholarship(ctx context.Context, actor authz.Actor, req *dto.CreateScholarshipApplicationRequest) (*models.ScholarshipApplication, error) {
	userID, err := resolveApplicant(actor, req.UserID)
	if err != nil {
		return nil, err
	}

	scholarship, err := s.scholarships.GetByID(ctx, req.ScholarshipID)
	if err != nil {
		return nil, err
	}

	app := &models.ScholarshipApplication{UserID: userID, ScholarshipID: scholarship.ID}
	if _, err := s.scholarshipApps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("error creating scholarship application: %w", err)
	}
	app.ScholarshipName = &scholarship.Name
	app.UniversityName = scholarship.UniversityName

	s.logger.Info().
		Int64("applicationID", app.ID).
		Int64("userID", userID).
		Int64("scholarshipID", scholarship.ID).
		Msg("Scholarship application submitted")

	return app, nil
}

// ListForUser returns both kinds of applications of one user
func (s *ApplicationService) ListForUser(ctx context.Context, actor authz.Actor, userID int64) (*dto.ApplicationsResponse, error) {
	if err := authz.CanAccessUser(actor, userID); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}

	scholarshipApps, err := s.scholarshipApps.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarship applications: %w", err)
	}

	return &dto.ApplicationsResponse{UniversityApps: apps, ScholarshipApps: scholarshipApps}, nil
}

// ListAll returns every application with student details
func (s *ApplicationService) ListAll(ctx context.Context, actor authz.Actor) (*dto.ApplicationsResponse, error) {
	if err := s.authz.ValidateAdmin(ctx, actor); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}

	scholarshipApps, err := s.scholarshipApps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarship applications: %w", err)
	}

	return &dto.ApplicationsResponse{UniversityApps: apps, ScholarshipApps: scholarshipApps}, nil
}

// checkDecision runs the checks shared by every status change
func checkDecision(ctx context.Context, verifier AdminVerifier, actor authz.Actor, status models.Status) error {
	if err := verifier.ValidateAdmin(ctx, actor); err != nil {
		return err
	}
	if !status.IsDecision() {
		return apperrors.NewValidationError("status must be approved or rejected")
	}
	return nil
}

// UpdateStatus decides a pending university application and notifies the applicant
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor authz.Actor, appID int64, status models.Status) (*StatusChange, error) {
	if err := checkDecision(ctx, s.authz, actor, status); err != nil {
		return nil, err
	}

	app, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	subject := fallbackUniversitySubject
	if app.UniversityName != nil {
		subject = *app.UniversityName
	}

	changed, err := s.apps.UpdateStatusIfPending(ctx, appID, status)
	if err != nil {
		return nil, fmt.Errorf("error updating application status: %w", err)
	}
	if !changed {
		return nil, apperrors.ErrInvalidTransition
	}

	s.logger.Info().
		Int64("applicationID", appID).
		Int64("userID", app.UserID).
		Int64("actorID", actor.UserID).
		Str("status", string(status)).
		Msg("University application decided")

	dispatch, err := s.notifier.Notify(ctx, app.UserID, fmt.Sprintf("Your application for %s has been %s.", subject, status))
	if err != nil {
		return nil, fmt.Errorf("status updated but notification failed: %w", err)
	}

	return &StatusChange{ID: appID, Status: status, Dispatch: dispatch}, nil
}

// UpdateScholarshipStatus decides a pending scholarship application and notifies the applicant
func (s *ApplicationService) UpdateScholarshipStatus(ctx context.Context, actor authz.Actor, appID int64, status models.Status) (*StatusChange, error) {
	if err := checkDecision(ctx, s.authz, actor, status); err != nil {
		return nil, err
	}

	app, err := s.scholarshipApps.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	subject := fallbackScholarshipSubject
	if app.ScholarshipName != nil {
		subject = *app.ScholarshipName
	}

	changed, err := s.scholarshipApps.UpdateStatusIfPending(ctx, appID, status)
	if err != nil {
		return nil, fmt.Errorf("error updating scholarship application status: %w", err)
	}
	if !changed {
		return nil, apperrors.ErrInvalidTransition
	}

	s.logger.Info().
		Int64("applicationID", appID).
		Int64("userID", app.UserID).
		Int64("actorID", actor.UserID).
		Str("status", string(status)).
		Msg("Scholarship application decided")

	dispatch, err := s.notifier.Notify(ctx, app.UserID, fmt.Sprintf("Your scholarship application for %s has been %s.", subject, status))
	if err != nil {
		return nil, fmt.Errorf("status updated but notification failed: %w", err)
	}

	return &StatusChange{ID: appID, Status: status, Dispatch: dispatch}, nil
}
