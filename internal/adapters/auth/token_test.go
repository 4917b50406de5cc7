package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	expiry := 24 * time.Hour
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("user-123", "u@example.com", []string{"admin", "organizer"}, expiry)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, []string{"admin", "organizer"}, claims.Roles)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)
	verifier := NewJWTVerifier(secret)

	token, err := issuer.Issue("admin-1", "ada@campus.test", []string{"admin"}, time.Hour)
	require.NoError(t, err)

	p, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", p.UserID)
	assert.Equal(t, "ada@campus.test", p.Email)
	assert.True(t, p.HasRole("admin"))
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	expired, err := NewJWTIssuer("test-secret").Issue("u1", "", nil, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := NewJWTIssuer("other-secret").Issue("u1", "", nil, time.Hour)
	require.NoError(t, err)
	noSubject, err := NewJWTIssuer("test-secret").Issue("", "", nil, time.Hour)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong key", token: wrongKey},
		{name: "no subject", token: noSubject},
		{name: "no expiry", token: noExpiry},
		{name: "garbage", token: "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := verifier.Verify(tt.token)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}
