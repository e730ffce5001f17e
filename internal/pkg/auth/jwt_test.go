package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "elementa.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "member@example.com",
		RoleType: models.RoleMember,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, string(models.RoleMember), claims.RoleType)
	assert.Equal(t, "elementa.test", claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		svc := newTestService(-time.Minute)
		access, _, _, _, err := svc.GenerateTokenPair(testUser())
		require.NoError(t, err)

		_, err = svc.ValidateToken(access)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		access, _, _, _, err := newTestService(time.Hour).GenerateTokenPair(testUser())
		require.NoError(t, err)

		other := NewJWTService(JWTConfig{
			SecretKey:       "different-secret",
			AccessTokenExp:  time.Hour,
			RefreshTokenExp: time.Hour,
			TokenIssuer:     "elementa.test",
		})
		_, err = other.ValidateToken(access)
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := newTestService(time.Hour).ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := newTestService(time.Hour).ValidateAndExtractClaims("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestGetRefreshTokenExpiry(t *testing.T) {
	svc := newTestService(time.Hour)
	expiry := svc.GetRefreshTokenExpiry()
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}
