package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/config"
	"bistro/pkg/auth"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := auth.Issue(auth.Identity{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.Equal(t, "Alice", id.Name)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, err := auth.Issue(auth.Identity{Email: "alice@example.com"})
	require.NoError(t, err)

	// Corrupt the signature.
	tampered := token[:len(token)-2] + "xx"

	_, err = auth.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := auth.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := auth.Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-auth.TokenTTL)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWTSecret()))
	require.NoError(t, err)

	_, err = auth.Verify(expired)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	claims := auth.Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = auth.Verify(forged)
	assert.Error(t, err)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := auth.FromCtx(ctx)
	assert.False(t, ok)

	want := auth.Identity{Email: "bob@example.com", Name: "Bob"}
	ctx = auth.WithIdentity(ctx, want)

	got, ok := auth.FromCtx(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
