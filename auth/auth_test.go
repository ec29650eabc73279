package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("abcde")
	require.NoError(t, err)
	assert.NotEqual(t, "abcde", digest)

	assert.True(t, CheckPassword("abcde", digest))
	assert.False(t, CheckPassword("abcdef", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret-key")

	token, err := tokens.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	info, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), info.UserID)
}

func TestTokenExpiresInSevenDays(t *testing.T) {
	tokens := NewTokenService("test-secret-key")

	tokenString, err := tokens.Issue(7)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp.Time, time.Minute)
}

func TestParseRejectsBadTokens(t *testing.T) {
	tokens := NewTokenService("test-secret-key")

	valid, err := tokens.Issue(1)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"iss": "inkwell-api",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	wrongIssuerString, err := wrongIssuer.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	otherService := NewTokenService("another-secret")
	wrongSecret, err := otherService.Issue(1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not.a.token"},
		{"Empty", ""},
		{"Expired", expiredString},
		{"Wrong issuer", wrongIssuerString},
		{"Wrong secret", wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Parse(tt.token)
			assert.Error(t, err)
		})
	}

	// Sanity: the valid token still parses.
	_, err = tokens.Parse(valid)
	assert.NoError(t, err)
}

func TestUserInfoContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, UserInfoFromContext(ctx))

	ctx = WithUserInfo(ctx, &UserInfo{UserID: 9})
	info := UserInfoFromContext(ctx)
	require.NotNil(t, info)
	assert.Equal(t, uint(9), info.UserID)
}
