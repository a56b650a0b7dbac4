package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/services"
	"github.com/FinHubBR/finhub_backend/internal/platform/config"
	"github.com/FinHubBR/finhub_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finhub-backend",
	}
	svc := services.NewTokenService(cfg)
	user := &domain.User{UserID: "user-1"}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, cfg.JWTIssuer, claims.Issuer)
}

func TestGenerateAccessTokenRejectedByWrongSecret(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finhub-backend",
	}
	svc := services.NewTokenService(cfg)

	token, _, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-1"})
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateStateStringIsRandom(t *testing.T) {
	svc := services.NewGoogleOAuthService(&config.Config{})

	a, err := svc.GenerateStateString(context.Background())
	require.NoError(t, err)
	b, err := svc.GenerateStateString(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
