package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VetCareCL/vetcare-api/internal/logger"
)

// RateLimitMiddleware limita requests por IP usando um contador com
// expiração no Redis, injetado como dependência em vez de estado global
// do processo. Se o Redis estiver indisponível a request passa (fail open).
func RateLimitMiddleware(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(maxRequests) {
			ttl, _ := rdb.TTL(ctx, key).Result()

			logger.L().Warn("rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.Int64("count", count),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code":  "too_many_requests",
				"message":     "Has excedido el límite de peticiones. Intenta nuevamente en unos minutos.",
				"retry_after": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
