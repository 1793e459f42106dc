// Package auth issues and verifies the signed identity tokens that gate
// privileged endpoints, and carries the verified identity through the
// request context.
//
// Tokens are deliberately role-free: the role is looked up fresh from the
// users collection on every admin-gated request, so a promotion or demotion
// takes effect on the next request and an old token can never smuggle stale
// privileges.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bistro/config"
	"bistro/pkg/apperr"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 6 * time.Hour

// Identity is the payload embedded in a token. Email is the subject; Name
// is carried along for display purposes only.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims holds the typed JWT payload.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// Issue creates a signed HS256 token for the given identity, expiring
// TokenTTL from now. It performs no storage access.
func Issue(id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verify parses and validates a token string, returning the embedded
// identity. Signature, malformation, and expiry failures all wrap
// apperr.ErrUnauthorized so the HTTP layer maps them to 401 uniformly.
func Verify(t string) (Identity, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid claims", apperr.ErrUnauthorized)
	}

	return Identity{Email: claims.Email, Name: claims.Name}, nil
}

// ── Context propagation ──────────────────────────────────────────────────────

type ctxKey struct{}

// WithIdentity stores the verified identity in ctx. Called by the auth
// middleware after a successful Verify.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the identity the auth middleware attached to ctx.
// ok is false on routes that never passed through RequireAuth.
func FromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
