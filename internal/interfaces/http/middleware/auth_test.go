package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-32-characters-long",
		Expiration: expiration,
		Issuer:     "bizdash-test",
	})
}

func authTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := AuthMiddlewareConfig{
		JWTService:       jwtService,
		SkipPaths:        []string{"/login"},
		SkipPathPrefixes: []string{"/public"},
	}

	router := gin.New()
	router.Use(AuthMiddlewareWithConfig(cfg))
	router.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/public/posts", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/protected", func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff_id": session.StaffID})
	})
	return router
}

func TestAuthMiddlewareSkipPaths(t *testing.T) {
	router := authTestRouter(testJWTService(time.Hour))

	for _, path := range []string{"/login", "/public/posts"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	router := authTestRouter(testJWTService(time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := testJWTService(-time.Minute)
	token, _, err := expired.Issue(uuid.New(), "Priya", "priya@shop.in", "manager")
	require.NoError(t, err)

	router := authTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeTokenExpired, resp.Error.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	staffID := uuid.New()
	token, _, err := jwtService.Issue(staffID, "Priya", "priya@shop.in", "manager")
	require.NoError(t, err)

	router := authTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		StaffID uuid.UUID `json:"staff_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, staffID, body.StaffID)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessionFor := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set(SessionKey, &auth.Session{StaffID: uuid.New(), Role: role})
			}
			c.Next()
		}
	}

	tests := []struct {
		name         string
		role         string
		expectedCode int
	}{
		{"admin allowed", "admin", http.StatusOK},
		{"manager forbidden", "manager", http.StatusForbidden},
		{"no session", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(sessionFor(tt.role), RequireAdmin())
			router.GET("/staff", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/staff", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
