package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/pkg/router"
)

func named(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	api := r.Group("/api/v1")
	api.Get("/menuItem/{id}", "menu.show", named(http.StatusOK))

	url, err := r.URL("menu.show", map[string]string{"id": "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/menuItem/abc123", url)

	_, err = r.URL("menu.show", nil)
	assert.Error(t, err, "unsubstituted params must be reported")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndDispatch(t *testing.T) {
	r := router.New()
	api := r.Group("/api/v1")
	api.Get("/menu", "menu.index", named(http.StatusTeapot))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	outer := r.Group("/api", tag("outer"))
	inner := outer.Group("/v1", tag("inner"))
	inner.Get("/ping", "", func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner", "route", "handler"}, order)
}

func TestNamesSorted(t *testing.T) {
	r := router.New()
	r.Get("/b", "b.route", named(http.StatusOK))
	r.Get("/a", "a.route", named(http.StatusOK))

	assert.Equal(t, []string{"a.route", "b.route"}, r.Names())
}

func TestGroupMiddlewareDoesNotLeakToSiblings(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}

	r := router.New()
	api := r.Group("/api")
	guarded := api.Group("", deny)
	guarded.Get("/secret", "", named(http.StatusOK))
	api.Get("/open", "", named(http.StatusOK))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/secret", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/open", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
