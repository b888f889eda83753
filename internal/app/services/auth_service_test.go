package services

import (
	"context"
	"testing"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*AuthService, *fakeStore, *auth.JWTService) {
	t.Helper()

	cost := auth.BcryptCost
	auth.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { auth.BcryptCost = cost })

	store := newFakeStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edupath.test",
	})
	return NewAuthService(fakeUserRepo{store}, jwtService, zerolog.Nop()), store, jwtService
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, store, jwtService := newTestAuthService(t)
	ctx := context.Background()
	ssc, hsc := 5.0, 4.83

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Rahim Uddin",
		Email:    "Rahim@Example.com",
		Password: "secret1",
		SSCGPA:   &ssc,
		HSCGPA:   &hsc,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, registered.User.Role)
	assert.Equal(t, "rahim@example.com", registered.User.Email)
	assert.NotEqual(t, "secret1", store.users[registered.User.ID].Password)
	assert.Equal(t, "Bearer", registered.Token.TokenType)
	assert.EqualValues(t, 3600, registered.Token.ExpiresIn)

	claims, err := jwtService.ValidateToken(registered.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "student", claims.Role)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "rahim@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotNil(t, loggedIn.User.LastActive)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Again", Email: "rahim@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "rahim@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Ping(t *testing.T) {
	svc, store, _ := newTestAuthService(t)
	user := store.addUser(&models.User{Name: "Rahim", Email: "rahim@example.com", Role: models.RoleStudent})
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	require.NoError(t, svc.Ping(context.Background(), user.ID))
	require.NotNil(t, store.users[user.ID].LastActive)
	assert.Equal(t, fixed, *store.users[user.ID].LastActive)

	assert.ErrorIs(t, svc.Ping(context.Background(), 404), apperrors.ErrResourceNotFound)
}
