package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "ridepool-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "rider@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "rider@example.com", (*claims)["email"])
	assert.Equal(t, "ridepool-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "rider@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "some-other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not.a.token", getTestConfig().JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
