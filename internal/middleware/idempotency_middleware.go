package middleware

import (
	"net/http"
	"time"

	"go-swifteats-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency guards checkout-style endpoints against double submission.
// The client sends an Idempotency-Key header; a cached response for that
// key is replayed, an in-flight key is rejected, otherwise a short-lived
// lock is taken and the handler runs. The handler caches its response
// under "idempotency_cache_key" and releases "idempotency_lock_key".
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := "idempotency:response:" + userID + ":" + key
		lockKey := "idempotency:lock:" + userID + ":" + key

		ctx := c.Request.Context()

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		ok, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block checkout; continue unguarded.
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "An identical request is already in progress", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
		c.Next()
	}
}
