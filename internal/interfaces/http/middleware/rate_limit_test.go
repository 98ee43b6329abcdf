package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/pkg/logger"
)

// stubLimiter answers every Allow call with a fixed verdict or error.
type stubLimiter struct {
	allow bool
	err   error
	calls int
}

func (s *stubLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.calls++
	return s.allow, s.err
}

func limitedRouter(limiter *stubLimiter, cfg *config.RateLimitConfig) *gin.Engine {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	router := gin.New()
	router.POST("/login", LoginRateLimit(limiter, cfg, metrics, logger.NewNoopLogger()),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return router
}

func postLogin(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginRateLimit_FailsOpenWhenBackendUnavailable(t *testing.T) {
	limiter := &stubLimiter{err: stderrors.New("redis: connection refused")}
	cfg := &config.RateLimitConfig{Enabled: true, LoginAttempts: 5, WindowSeconds: 60}
	router := limitedRouter(limiter, cfg)

	w := postLogin(router)

	assert.Equal(t, http.StatusOK, w.Code, "a broken limiter backend must not block logins")
	assert.Equal(t, 1, limiter.calls)
}

func TestLoginRateLimit_BlockedRequestGets429(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	cfg := &config.RateLimitConfig{Enabled: true, LoginAttempts: 5, WindowSeconds: 60}
	router := limitedRouter(limiter, cfg)

	w := postLogin(router)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later"}`, w.Body.String())
}

func TestLoginRateLimit_DisabledSkipsLimiter(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	cfg := &config.RateLimitConfig{Enabled: false}
	router := limitedRouter(limiter, cfg)

	w := postLogin(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, limiter.calls, "disabled limiter must not be consulted")
}
