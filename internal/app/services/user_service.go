package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/helpers"
)

// DefaultOnlineWindow is how recently a user must have been active to count as online
const DefaultOnlineWindow = 5 * time.Minute

// UserService defines the interface for user profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, actor authz.Actor, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	ListForAdmin(ctx context.Context, actor authz.Actor) ([]*dto.AdminUserResponse, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo     repositories.IUserRepository
	verifier     AdminVerifier
	onlineWindow time.Duration
	now          func() time.Time
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository, verifier AdminVerifier, onlineWindow time.Duration) UserService {
	if onlineWindow <= 0 {
		onlineWindow = DefaultOnlineWindow
	}
	return &userServiceImpl{
		userRepo:     userRepo,
		verifier:     verifier,
		onlineWindow: onlineWindow,
		now:          time.Now,
	}
}

// GetProfile retrieves the user
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes name, grades and group of a user
func (s *userServiceImpl) UpdateProfile(ctx context.Context, actor authz.Actor, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := authz.CanAccessUser(actor, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.SSCGPA = req.SSCGPA
	user.HSCGPA = req.HSCGPA
	user.GroupName = req.GroupName

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListForAdmin lists every user with an online flag
func (s *userServiceImpl) ListForAdmin(ctx context.Context, actor authz.Actor) ([]*dto.AdminUserResponse, error) {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	now := s.now()
	response := make([]*dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, &dto.AdminUserResponse{
			User:   user,
			Online: helpers.IsRecent(user.LastActive, now, s.onlineWindow),
		})
	}
	return response, nil
}
