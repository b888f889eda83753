package services

import (
	"context"
	"fmt"
	"strings"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/eligibility"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/validation"
)

// UniversityService defines the interface for university-related operations
type UniversityService interface {
	List(ctx context.Context, filter models.UniversityFilter) ([]*models.University, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	ListEligible(ctx context.Context, actor authz.Actor, userID int64) ([]*models.University, error)
	EvaluateForUser(ctx context.Context, actor authz.Actor, userID int64) ([]eligibility.Result, error)
	Create(ctx context.Context, actor authz.Actor, university *models.University) (int64, error)
	Update(ctx context.Context, actor authz.Actor, university *models.University) error
	Delete(ctx context.Context, actor authz.Actor, id int64) error
}

// universityServiceImpl implements the UniversityService interface
type universityServiceImpl struct {
	universityRepo repositories.IUniversityRepository
	userRepo       repositories.IUserRepository
	verifier       AdminVerifier
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo repositories.IUniversityRepository, userRepo repositories.IUserRepository, verifier AdminVerifier) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
		userRepo:       userRepo,
		verifier:       verifier,
	}
}

// validateUniversity validates university data before database operations
func (s *universityServiceImpl) validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(university.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !university.Type.IsValid() {
		return fmt.Errorf("%w: type must be Public or Private", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidGPA(university.MinSSCGPA) || !validation.IsValidGPA(university.MinHSCGPA) {
		return fmt.Errorf("%w: minimum GPA must be between 0 and 5", apperrors.ErrValidationFailed)
	}

	return nil
}

// List returns universities, optionally filtered by search text and type
func (s *universityServiceImpl) List(ctx context.Context, filter models.UniversityFilter) ([]*models.University, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be Public or Private", apperrors.ErrValidationFailed)
	}

	universities, err := s.universityRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	return universities, nil
}

// GetByID retrieves a university by ID
func (s *universityServiceImpl) GetByID(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.universityRepo.GetByID(ctx, id)
}

// studentAndUniversities loads the inputs of an eligibility evaluation
func (s *universityServiceImpl) studentAndUniversities(ctx context.Context, actor authz.Actor, userID int64) (*models.User, []*models.University, error) {
	if err := authz.CanAccessUser(actor, userID); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	universities, err := s.universityRepo.List(ctx, models.UniversityFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving universities: %w", err)
	}

	return user, universities, nil
}

// ListEligible returns the universities whose minimums the student meets
func (s *universityServiceImpl) ListEligible(ctx context.Context, actor authz.Actor, userID int64) ([]*models.University, error) {
	user, universities, err := s.studentAndUniversities(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	return eligibility.Filter(user, universities), nil
}

// EvaluateForUser returns an eligibility badge for every university
func (s *universityServiceImpl) EvaluateForUser(ctx context.Context, actor authz.Actor, userID int64) ([]eligibility.Result, error) {
	user, universities, err := s.studentAndUniversities(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	return eligibility.Evaluate(user, universities), nil
}

// Create creates a new university
func (s *universityServiceImpl) Create(ctx context.Context, actor authz.Actor, university *models.University) (int64, error) {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return 0, err
	}
	if err := s.validateUniversity(university); err != nil {
		return 0, err
	}
	return s.universityRepo.Create(ctx, university)
}

// Update replaces an existing university
func (s *universityServiceImpl) Update(ctx context.Context, actor authz.Actor, university *models.University) error {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return err
	}
	if err := s.validateUniversity(university); err != nil {
		return err
	}
	if university.ID <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.universityRepo.Update(ctx, university)
}

// Delete removes a university
func (s *universityServiceImpl) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.universityRepo.Delete(ctx, id)
}
