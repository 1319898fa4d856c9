package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sitebuilder-backend/internal/authorization"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AuthMiddleware(testSecret), AdminMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, EditorID(c))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		cookie string
		status int
		body   string
	}{
		{name: "No credentials", status: http.StatusUnauthorized},
		{name: "Malformed header", header: "Token abc", status: http.StatusUnauthorized},
		{name: "Bad signature", header: "Bearer " + func() string {
			token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": "admin", "exp": exp}).SignedString([]byte("other"))
			return token
		}(), status: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + signToken(t, jwt.MapClaims{"sub": "u1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), status: http.StatusUnauthorized},
		{name: "Missing exp", header: "Bearer " + signToken(t, jwt.MapClaims{"sub": "u1", "role": "admin"}), status: http.StatusUnauthorized},
		{name: "Reader role", header: "Bearer " + signToken(t, jwt.MapClaims{"sub": "u1", "role": "reader", "exp": exp}), status: http.StatusForbidden},
		{name: "Admin subject", header: "Bearer " + signToken(t, jwt.MapClaims{"sub": "u1", "role": "admin", "exp": exp}), status: http.StatusOK, body: "u1"},
		{name: "Numeric user id", header: "Bearer " + signToken(t, jwt.MapClaims{"user_id": 42, "role": "editor", "exp": exp}), status: http.StatusOK, body: "42"},
		{name: "Cookie", cookie: signToken(t, jwt.MapClaims{"sub": "u7", "role": "admin", "exp": exp}), status: http.StatusOK, body: "u7"},
	}

	router := newAuthRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: authTokenCookieName, Value: tc.cookie})
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tc.status {
				t.Fatalf("expected status %d, got %d (%s)", tc.status, recorder.Code, recorder.Body.String())
			}
			if tc.body != "" && recorder.Body.String() != tc.body {
				t.Fatalf("expected editor %q, got %q", tc.body, recorder.Body.String())
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := time.Now().Add(time.Hour).Unix()

	router := gin.New()
	router.DELETE("/cache", AuthMiddleware(testSecret), RequirePermission(authorization.PermissionManageCache), func(c *gin.Context) {
		c.String(http.StatusOK, string(Role(c)))
	})

	cases := []struct {
		role   string
		status int
	}{
		{role: "admin", status: http.StatusOK},
		{role: "editor", status: http.StatusForbidden},
		{role: "viewer", status: http.StatusForbidden},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodDelete, "/cache", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "u1", "role": tc.role, "exp": exp}))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		if recorder.Code != tc.status {
			t.Fatalf("role %s: expected status %d, got %d", tc.role, tc.status, recorder.Code)
		}
	}
}
