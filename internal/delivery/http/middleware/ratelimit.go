package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
)

// Counter is the injected fixed-window counter behind the rate limiter.
// Any store can back it; the Redis implementation lives in
// internal/repository/redis.
type Counter interface {
	IncrementRequestCount(ctx context.Context, clientKey string) (int64, error)
}

type rateLimitError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// RateLimit enforces maxPerMinute requests per client. The client key is
// the authenticated subject when one is set, the remote IP otherwise.
// Counter failures fail open: losing the limiter must not lose search.
func RateLimit(counter Counter, maxPerMinute int64, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if subject, ok := c.Get(SubjectKey); ok {
			if s, ok := subject.(string); ok && s != "" {
				key = s
			}
		}

		count, err := counter.IncrementRequestCount(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.String("client", key), zap.Error(err))
			c.Next()
			return
		}

		if count > maxPerMinute {
			logger.Warn("rate limit exceeded",
				zap.String("client", key),
				zap.Int64("count", count),
			)
			var body rateLimitError
			body.Error.Code = domain.CodeRateLimit
			body.Error.Message = "too many requests, slow down"
			c.AbortWithStatusJSON(http.StatusTooManyRequests, body)
			return
		}

		c.Next()
	}
}
