package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/testutil"
	"github.com/sharath018/event-management-backend/middleware"
	"github.com/sharath018/event-management-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) (*gin.Engine, auth.Service, *auth.User, *auth.User) {
	t.Helper()
	db := testutil.NewDB(t)
	authSvc := testutil.AuthService(db, testutil.Config())
	admin := testutil.MustRegister(t, authSvc, "admin")
	bob := testutil.MustRegister(t, authSvc, "bob")

	r := gin.New()
	r.Use(middleware.AuditMiddleware())
	whoami := func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		c.String(http.StatusOK, u.Username)
	}
	r.GET("/me", middleware.AuthMiddleware(authSvc), whoami)
	r.GET("/admin", middleware.AuthMiddleware(authSvc), middleware.RequireAdmin(testutil.AuditService(db)), whoami)
	return r, authSvc, admin, bob
}

func do(r http.Handler, path string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r, _, _, _ := newEngine(t)

	cases := map[string]func(*http.Request){
		"no header":      nil,
		"wrong password": func(req *http.Request) { req.SetBasicAuth("bob", "nope") },
		"unknown user":   func(req *http.Request) { req.SetBasicAuth("ghost", "secret123") },
		"bad scheme":     func(req *http.Request) { req.Header.Set("Authorization", "Digest abc") },
		"bad token":      func(req *http.Request) { req.Header.Set("Authorization", "Bearer not-a-jwt") },
		"broken basic":   func(req *http.Request) { req.Header.Set("Authorization", "Basic !!!") },
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(r, "/me", setup)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, middleware.BasicChallenge, w.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"status":401,"message":"Unauthorized Access"}`, w.Body.String())
		})
	}
}

func TestAuthMiddlewareAcceptsBasicAndBearer(t *testing.T) {
	r, authSvc, _, bob := newEngine(t)

	w := do(r, "/me", func(req *http.Request) { req.SetBasicAuth("bob", "secret123") })
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", w.Body.String())

	token, _, err := authSvc.IssueToken(*bob)
	require.NoError(t, err)

	w = do(r, "/me", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) })
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r, _, _, _ := newEngine(t)

	w := do(r, "/admin", func(req *http.Request) { req.SetBasicAuth("admin", "secret123") })
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "/admin", func(req *http.Request) { req.SetBasicAuth("bob", "secret123") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":400,"message":"You are not an admin"}`, w.Body.String())
}

func TestAuditMiddlewareClientIP(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))
	r.Use(middleware.AuditMiddleware())
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, utils.ClientIP(c)) })

	// behind a trusted proxy the forwarded address wins
	w := do(r, "/ip", func(req *http.Request) {
		req.RemoteAddr = "10.0.0.5:443"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	})
	assert.Equal(t, "203.0.113.7", w.Body.String())

	w = do(r, "/ip", func(req *http.Request) {
		req.RemoteAddr = "10.0.0.5:443"
		req.Header.Set("X-Real-Ip", "198.51.100.2")
	})
	assert.Equal(t, "198.51.100.2", w.Body.String())

	// anyone else cannot spoof it
	w = do(r, "/ip", func(req *http.Request) {
		req.RemoteAddr = "192.0.2.9:5555"
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
	})
	assert.Equal(t, "192.0.2.9", w.Body.String())
}
