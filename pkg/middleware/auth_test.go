package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/pkg/auth"
	"bistro/pkg/middleware"
)

func okVerifier(id auth.Identity) middleware.TokenVerifier {
	return func(token string) (auth.Identity, error) {
		if token == "good" {
			return id, nil
		}
		return auth.Identity{}, errors.New("bad token")
	}
}

type roleStub struct {
	role string
	err  error
	// records the email that was looked up
	asked string
}

func (r *roleStub) RoleByEmail(_ context.Context, email string) (string, error) {
	r.asked = email
	return r.role, r.err
}

func protectedHandler(called *bool, gotID *auth.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := auth.FromCtx(r.Context()); ok {
			*gotID = id
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	var called bool
	var id auth.Identity
	h := middleware.RequireAuth(okVerifier(auth.Identity{}))(protectedHandler(&called, &id))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthNonBearerScheme(t *testing.T) {
	var called bool
	var id auth.Identity
	h := middleware.RequireAuth(okVerifier(auth.Identity{}))(protectedHandler(&called, &id))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	var called bool
	var id auth.Identity
	h := middleware.RequireAuth(okVerifier(auth.Identity{}))(protectedHandler(&called, &id))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	var called bool
	var id auth.Identity
	want := auth.Identity{Email: "alice@example.com", Name: "Alice"}
	h := middleware.RequireAuth(okVerifier(want))(protectedHandler(&called, &id))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, want, id)
}

func adminChain(verify middleware.TokenVerifier, roles middleware.RoleSource, called *bool) http.Handler {
	var id auth.Identity
	h := middleware.RequireAdmin(roles)(protectedHandler(called, &id))
	return middleware.RequireAuth(verify)(h)
}

func TestRequireAdminNonAdminRole(t *testing.T) {
	var called bool
	roles := &roleStub{role: ""}
	h := adminChain(okVerifier(auth.Identity{Email: "bob@example.com"}), roles, &called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "bob@example.com", roles.asked, "role must be looked up for the token's email")
}

func TestRequireAdminLookupFailure(t *testing.T) {
	var called bool
	roles := &roleStub{err: errors.New("store down")}
	h := adminChain(okVerifier(auth.Identity{Email: "bob@example.com"}), roles, &called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// An error while establishing privilege terminates the request.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	var called bool
	roles := &roleStub{role: "admin"}
	h := adminChain(okVerifier(auth.Identity{Email: "root@example.com"}), roles, &called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	var called bool
	var id auth.Identity
	// RequireAdmin mounted without RequireAuth in front of it.
	h := middleware.RequireAdmin(&roleStub{role: "admin"})(protectedHandler(&called, &id))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
