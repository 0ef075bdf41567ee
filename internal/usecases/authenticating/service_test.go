package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/store-deck-api/internal/config"
)

func newTestService() Authenticator {
	return NewService(&config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateToken(42, "admin@loja.teste", 1, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "admin@loja.teste", claims.UserEmail)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestValidateTokenExpired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateToken(42, "admin@loja.teste", 1, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	other := NewService(&config.Config{
		Auth: config.Auth{Secret: "outro-segredo"},
	})

	token, err := other.GenerateToken(1, "user@loja.teste", 3, time.Hour)
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newTestService().ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
