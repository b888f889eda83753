package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWT() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edupath.test",
	})
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: 3, Email: "student@example.com", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestJWT_Expired(t *testing.T) {
	svc := newTestJWT()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleAdmin})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAndExtractClaims(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestJWT_WrongSecret(t *testing.T) {
	token, _, err := newTestJWT().GenerateAccessToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "edupath.test"})
	_, err = other.ValidateAndExtractClaims(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	tok, err = ExtractBearerToken("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	_, err = ExtractBearerToken("Basic xyz")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { BcryptCost = 12 })

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}
