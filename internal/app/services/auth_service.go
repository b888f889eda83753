package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, int, error)
}

// AuthService handles registration, login and liveness pings
type AuthService struct {
	userRepo repositories.IUserRepository
	tokens   TokenIssuer
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, tokens TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a student account and signs a token for it
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Role:       models.RoleStudent,
		SSCGPA:     req.SSCGPA,
		HSCGPA:     req.HSCGPA,
		GroupName:  req.GroupName,
		LastActive: &now,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			s.logger.Warn().Str("email", user.Email).Msg("Registration rejected, email already exists")
		}
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Student registered")
	return s.authResponse(user)
}

// Login verifies credentials, records activity and signs a token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Login rejected, password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.userRepo.TouchLastActive(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastActive = &now

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return s.authResponse(user)
}

// Ping records that the user is active
func (s *AuthService) Ping(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return apperrors.NewValidationError("invalid user ID")
	}
	return s.userRepo.TouchLastActive(ctx, userID, s.now())
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: user,
	}, nil
}
