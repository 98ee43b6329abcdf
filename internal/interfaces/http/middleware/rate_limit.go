package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/internal/infrastructure/ratelimit"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// LoginRateLimit throttles login attempts per client IP. A limiter backend
// failure fails open: losing Redis must not lock everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("login_rate_limit")

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := "login:" + c.ClientIP()
		ok, err := limiter.Allow(c.Request.Context(), key, cfg.LoginAttempts, cfg.Window())
		if err != nil {
			log.Warn(c.Request.Context(), "rate limiter unavailable, failing open",
				logger.Fields{"error": err.Error()})
			c.Next()
			return
		}
		if !ok {
			metrics.RecordRateLimitHit(c.FullPath())
			c.AbortWithStatusJSON(errors.ErrRateLimited.Status,
				gin.H{"error": errors.ErrRateLimited.Message})
			return
		}
		c.Next()
	}
}
