package auth

import (
	"testing"

	"agentverse/config"
	"agentverse/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_AccessTokenCarriesRoles(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	principalID := uuid.New()
	access, refresh, err := svc.GenerateTokens(principalID, []string{entity.RoleUser, entity.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	token, err := svc.ValidateToken(access, "access-secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, principalID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, entity.RoleAdmin)
}

func TestJWTService_RefreshTokenHasNoRoles(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{entity.RoleUser})
	require.NoError(t, err)

	token, err := svc.ValidateToken(refresh, "refresh-secret")
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "refresh", claims["type"])
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	token, err := svc.ValidateToken(access, "not-the-secret")
	if err == nil {
		assert.False(t, token.Valid)
	}
}
