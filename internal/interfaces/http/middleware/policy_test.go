package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/logger"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/dogs", "/api/dogs", true},
		{"/api/dogs", "/api/dogs/7", false},
		{"/api/dogs/*", "/api/dogs/7", true},
		{"/api/dogs/*", "/api/dogs/7/photos", false},
		{"/api/dogs/status/*", "/api/dogs/status/AVAILABLE", true},
		{"/api/admin/**", "/api/admin", true},
		{"/api/admin/**", "/api/admin/users/3", true},
		{"/api/admin/**", "/api/auth/login", false},
		{"/**", "/anything/at/all", true},
		{"/**", "/", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.path),
			"pattern %q path %q", tt.pattern, tt.path)
	}
}

// policyRouter wires the gate and the policy in front of catch-all handlers
// so table semantics can be probed with real requests.
func policyRouter(t *testing.T, repo *fakeUserRepo) (*gin.Engine, crypto.TokenCodec) {
	t.Helper()
	codec := crypto.NewTokenCodec("policy-test-secret", time.Hour, logger.NewNoopLogger())

	router := gin.New()
	router.Use(AuthGate(codec, repo, logger.NewNoopLogger()))
	router.Use(Policy(PolicyTable))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.NoRoute(ok)
	return router, codec
}

func serve(router *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPolicy_PublicRoutesAllowAnonymous(t *testing.T) {
	router, _ := policyRouter(t, &fakeUserRepo{users: map[string]*models.User{}})

	public := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/admin/login"},
		{http.MethodGet, "/api/dogs"},
		{http.MethodGet, "/api/dogs/42"},
		{http.MethodGet, "/api/dogs/adopt"},
		{http.MethodGet, "/api/dogs/buy"},
		{http.MethodGet, "/api/dogs/status/AVAILABLE"},
		{http.MethodGet, "/api/surrender-dogs"},
		{http.MethodGet, "/api/surrender-dogs/3"},
		{http.MethodPost, "/api/surrender-dogs"},
		{http.MethodGet, "/api/reports"},
		{http.MethodPost, "/api/reports"},
		{http.MethodPost, "/api/contact-messages"},
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/metrics"},
		{http.MethodOptions, "/api/users/me"},
	}
	for _, tt := range public {
		w := serve(router, tt.method, tt.path, "")
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestPolicy_ProtectedRoutesRejectAnonymousWith401(t *testing.T) {
	router, _ := policyRouter(t, &fakeUserRepo{users: map[string]*models.User{}})

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/applications/my-applications"},
		{http.MethodPost, "/api/applications"},
		{http.MethodGet, "/api/reports/my-reports"},
		{http.MethodGet, "/api/surrender-dogs/my-requests"},
		{http.MethodGet, "/api/contact-messages/my-messages"},
		{http.MethodGet, "/api/contact-messages/5"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/admin/users"},
		// Unlisted paths default to authenticated.
		{http.MethodGet, "/api/unknown"},
	}
	for _, tt := range protected {
		w := serve(router, tt.method, tt.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String(), "%s %s", tt.method, tt.path)
	}
}

func TestPolicy_AdminRoutesRejectNonAdminWith401(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"demo":  enabledUser("demo", models.RoleUser),
		"admin": enabledUser("admin", models.RoleUser, models.RoleAdmin),
	}}
	router, codec := policyRouter(t, repo)

	userToken, err := codec.Issue("demo", []models.Role{models.RoleUser})
	require.NoError(t, err)
	adminToken, err := codec.Issue("admin", []models.Role{models.RoleUser, models.RoleAdmin})
	require.NoError(t, err)

	// A plain user hitting an admin route gets 401, not 403.
	w := serve(router, http.MethodGet, "/api/admin/users", "Bearer "+userToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/api/admin/users", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// The same user passes on authenticated routes.
	w = serve(router, http.MethodGet, "/api/users/me", "Bearer "+userToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPolicy_FirstMatchGoverns(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	router, _ := policyRouter(t, repo)

	// my-requests precedes the public wildcard for the same prefix.
	w := serve(router, http.MethodGet, "/api/surrender-dogs/my-requests", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Sibling single-segment paths stay public.
	w = serve(router, http.MethodGet, "/api/surrender-dogs/99", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
