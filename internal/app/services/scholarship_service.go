package services

import (
	"context"
	"fmt"
	"strings"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
)

// ScholarshipService defines the interface for scholarship-related operations
type ScholarshipService interface {
	List(ctx context.Context) ([]*models.Scholarship, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	Create(ctx context.Context, actor authz.Actor, scholarship *models.Scholarship) (int64, error)
	Update(ctx context.Context, actor authz.Actor, scholarship *models.Scholarship) error
	Delete(ctx context.Context, actor authz.Actor, id int64) error
}

type scholarshipServiceImpl struct {
	scholarshipRepo repositories.IScholarshipRepository
	universityRepo  repositories.IUniversityRepository
	verifier        AdminVerifier
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(scholarshipRepo repositories.IScholarshipRepository, universityRepo repositories.IUniversityRepository, verifier AdminVerifier) ScholarshipService {
	return &scholarshipServiceImpl{
		scholarshipRepo: scholarshipRepo,
		universityRepo:  universityRepo,
		verifier:        verifier,
	}
}

// validateScholarship checks the fields and that the owning university exists
func (s *scholarshipServiceImpl) validateScholarship(ctx context.Context, scholarship *models.Scholarship) error {
	if scholarship == nil {
		return fmt.Errorf("%w: scholarship is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(scholarship.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(scholarship.Amount) == "" {
		return fmt.Errorf("%w: amount cannot be empty", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByID(ctx, scholarship.UniversityID)
	if err != nil {
		return err
	}
	scholarship.UniversityName = &university.Name

	return nil
}

func (s *scholarshipServiceImpl) List(ctx context.Context) ([]*models.Scholarship, error) {
	scholarships, err := s.scholarshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	return scholarships, nil
}

func (s *scholarshipServiceImpl) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	return s.scholarshipRepo.GetByID(ctx, id)
}

func (s *scholarshipServiceImpl) Create(ctx context.Context, actor authz.Actor, scholarship *models.Scholarship) (int64, error) {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return 0, err
	}
	if err := s.validateScholarship(ctx, scholarship); err != nil {
		return 0, err
	}
	return s.scholarshipRepo.Create(ctx, scholarship)
}

func (s *scholarshipServiceImpl) Update(ctx context.Context, actor authz.Actor, scholarship *models.Scholarship) error {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return err
	}
	if err := s.validateScholarship(ctx, scholarship); err != nil {
		return err
	}
	return s.scholarshipRepo.Update(ctx, scholarship)
}

func (s *scholarshipServiceImpl) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	return s.scholarshipRepo.Delete(ctx, id)
}
