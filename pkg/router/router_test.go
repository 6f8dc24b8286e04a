package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungku/warung/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/stores/{slug}", "catalog.show", ok)
	r.Post("/stores/{slug}/orders", "orders.place", ok)

	path, found := r.Path("catalog.show")
	require.True(t, found)
	assert.Equal(t, "/stores/{slug}", path)

	url, err := r.URL("orders.place", map[string]string{"slug": "warung-bu-tini"})
	require.NoError(t, err)
	assert.Equal(t, "/stores/warung-bu-tini/orders", url)

	_, err = r.URL("orders.place", nil)
	assert.Error(t, err, "missing params must not build a URL")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndDispatch(t *testing.T) {
	r := router.New()
	api := r.Group("/api/v1")
	api.Get("/health", "health", ok)

	seller := api.Group("/seller")
	seller.Get("/orders", "orders.index", ok)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/api/v1/health", routes[0].Path)
	assert.Equal(t, "/api/v1/seller/orders", routes[1].Path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/seller/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var touched bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			touched = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	r.Group("/api", mw).Get("/ping", "ping", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, touched)
}
