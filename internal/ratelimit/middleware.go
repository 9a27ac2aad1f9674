package ratelimit

import (
	"fmt"
	"net/http"

	"insights-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for per-tenant rate limiting.
// It runs after the JWT middleware, which sets Tenant-ID in context.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tenantVal, exists := c.Get("Tenant-ID")
		if !exists {
			c.Next()
			return
		}
		tenantKey, ok := tenantVal.(string)
		if !ok || tenantKey == "" {
			c.Next()
			return
		}

		result, err := s.Check(ctx, tenantKey)
		if err != nil {
			// Fail open: a broken limiter must not take the API down.
			s.logger.Warn(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			s.logger.Info(ctx, "rate limit exceeded",
				observability.Field{Key: "tenant_id", Value: tenantKey},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": result.RetryAfterMs / 1000,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
