package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenTypesAreDistinct(t *testing.T) {
	access, err := GenerateToken(7)
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, TokenAccess, claims.Type)

	claims, err = ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenRefresh, claims.Type)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.True(t, CheckPassword(hash, "rahasia-banget"))
	assert.False(t, CheckPassword(hash, "salah"))
}
