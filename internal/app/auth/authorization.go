package auth

import (
	"context"
	"errors"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/logger"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID int64
	Role   models.RoleType
}

// IsAdmin reports whether the actor claims the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// UserGetter loads users by ID
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	userRepo UserGetter
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo UserGetter) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// IsAdmin checks the stored role of the user, not just the token claim
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return false, nil
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsAdmin")
		return false, err
	}
	return user.IsAdmin(), nil
}

// ValidateAdmin returns ErrPermissionDenied unless the actor is a current admin
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, actor Actor) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbiddenError("only administrators can perform this action")
	}

	isAdmin, err := s.IsAdmin(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.NewForbiddenError("only administrators can perform this action")
	}

	return nil
}

// CanAccessUser checks whether the actor may read or act on behalf of userID.
// Students may only access themselves; admins may access anyone.
func CanAccessUser(actor Actor, userID int64) error {
	if actor.UserID == userID || actor.IsAdmin() {
		return nil
	}
	return apperrors.NewForbiddenError("you can only access your own records")
}
