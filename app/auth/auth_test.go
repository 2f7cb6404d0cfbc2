package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", ""))
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestHashesDiffer(t *testing.T) {
	// bcrypt salts internally, two hashes of the same password must differ
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken("  Admin@Example.COM ", "topsecret", DefaultTokenTTL)
	require.NoError(t, err)

	v := VerifyToken(token, "topsecret", AdminRole)
	require.True(t, v.Valid, "reason: %s", v.Reason)
	assert.Equal(t, "admin@example.com", v.Subject)
	assert.Equal(t, AdminRole, v.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), v.ExpiresAt, time.Minute)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("admin@example.com", "topsecret", DefaultTokenTTL)
	require.NoError(t, err)

	v := VerifyToken(token, "othersecret", AdminRole)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "signature")
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken("admin@example.com", "topsecret", -time.Hour)
	require.NoError(t, err)

	v := VerifyToken(token, "topsecret", AdminRole)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "expired")
}

func TestVerifyTokenWrongRole(t *testing.T) {
	// hand-craft a token carrying a non-admin role
	claims := Claims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "viewer@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("topsecret"))
	require.NoError(t, err)

	v := VerifyToken(token, "topsecret", AdminRole)
	assert.False(t, v.Valid)
	assert.Equal(t, "Forbidden", v.Reason)

	// no required role: the same token passes
	v = VerifyToken(token, "topsecret", "")
	assert.True(t, v.Valid)
	assert.Equal(t, "viewer", v.Role)
}

func TestVerifyTokenGarbage(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		v := VerifyToken(tok, "topsecret", AdminRole)
		assert.False(t, v.Valid)
		assert.NotEmpty(t, v.Reason)
	}
}
