package helper

import (
	"testing"
	"theatre_api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

// The secret arrives via .env after the process starts, so tokens must be
// signed and verified against the runtime environment, not a value captured
// at package init.
func TestAccessTokenRoundTripWithLateSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-set-after-start")

	tokenString, err := GenerateAccessToken(model.TokenClaim{UserId: 42, Email: "alice@example.com"})
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["userId"])
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestParseTokenRejectsRotatedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	tokenString, err := GenerateRefreshToken(model.TokenClaim{UserId: 1, Email: "a@b.c"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	token, err := ParseToken(tokenString)
	if err == nil {
		assert.False(t, token.Valid)
	} else {
		assert.Error(t, err)
	}
}
