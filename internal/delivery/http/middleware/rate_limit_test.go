package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Redis is not initialized under test, so these exercise the in-memory path.

func newRateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitBlocksAboveThreshold(t *testing.T) {
	cfg := RateLimitConfig{Limit: 3, Window: time.Minute, KeyPrefix: "rl:test-block:"}
	r := newRateLimitedRouter(cfg)

	for i := 0; i < 3; i++ {
		rec := hit(r, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := hit(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	cfg := RateLimitConfig{Limit: 1, Window: time.Minute, KeyPrefix: "rl:test-ip:"}
	r := newRateLimitedRouter(cfg)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.2").Code)
	// A different client is unaffected
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.3").Code)
}

func TestRateLimitHeaders(t *testing.T) {
	cfg := RateLimitConfig{Limit: 5, Window: time.Minute, KeyPrefix: "rl:test-headers:"}
	r := newRateLimitedRouter(cfg)

	rec := hit(r, "10.0.0.4")
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitWindowResets(t *testing.T) {
	cfg := RateLimitConfig{Limit: 1, Window: 50 * time.Millisecond, KeyPrefix: "rl:test-reset:"}
	r := newRateLimitedRouter(cfg)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.5").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.5").Code)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.5").Code)
}
