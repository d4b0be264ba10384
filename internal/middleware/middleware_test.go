package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/admins/:id/dashboard", AuthMiddleware(testSecret), AdminScope("id"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doGet(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	token, err := utils.GenerateToken(testSecret, 3, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		auth string
		want int
	}{
		{"missing token", "/admins/3/dashboard", "", http.StatusUnauthorized},
		{"bad format", "/admins/3/dashboard", "Token " + token, http.StatusUnauthorized},
		{"invalid token", "/admins/3/dashboard", "Bearer nope", http.StatusUnauthorized},
		{"other admin scope", "/admins/4/dashboard", "Bearer " + token, http.StatusForbidden},
		{"own scope", "/admins/3/dashboard", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.path, tt.auth)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(1, 2)
	r := gin.New()
	r.Use(RateLimitMiddleware(limiter))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	assert.Equal(t, http.StatusOK, doGet(r, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/ping", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/ping", "").Code)
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(5, 10)
	limiter.now = func() time.Time { return now }

	limiter.GetLimiter("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.GetLimiter("10.0.0.2")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, limiter.Cleanup())
	assert.Len(t, limiter.ips, 1)
	assert.Contains(t, limiter.ips, "10.0.0.2")
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
