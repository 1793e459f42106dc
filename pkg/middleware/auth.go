package middleware

import (
	"context"
	"net/http"
	"strings"

	"bistro/pkg/auth"
	"bistro/pkg/logger"
	"bistro/pkg/response"
)

const adminRole = "admin"

// TokenVerifier validates a raw token string and returns the identity it
// proves. auth.Verify satisfies it; tests swap in a stub.
type TokenVerifier func(token string) (auth.Identity, error)

// RoleSource answers "what role does this email have right now". It is
// queried fresh on every admin-gated request, never cached in the token,
// so promotions apply from the next request onward.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAuth rejects the request with 401 before any handler logic unless
// the Authorization header carries a verifiable bearer token. On success the
// identity is attached to the request context for handlers and for
// RequireAdmin further down the chain.
func RequireAuth(verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				response.Unauthorized(w)
				return
			}

			id, err := verify(token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := auth.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects the request with 403 unless the authenticated
// identity's user record currently holds the admin role. It must be chained
// after RequireAuth.
//
// A lookup failure also terminates the request with 403: an error while
// establishing privilege can never fall through to the handler.
func RequireAdmin(roles RoleSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.FromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			role, err := roles.RoleByEmail(r.Context(), id.Email)
			if err != nil {
				logger.WithCtx(r.Context()).Error("admin role lookup failed",
					"email", id.Email, "error", err)
				response.Forbidden(w)
				return
			}

			if role != adminRole {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
