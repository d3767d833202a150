package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const limiterPrefix = "event-management:limiter"

// RateLimiter limits requests per client IP. Counters live in Redis when a client is given,
// so several instances share one budget; otherwise they are kept in process.
func RateLimiter(perMinute int, rdb *redis.Client) (gin.HandlerFunc, error) {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  int64(perMinute),
	}

	var store limiter.Store
	if rdb != nil {
		s, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: limiterPrefix})
		if err != nil {
			return nil, fmt.Errorf("rate limiter redis store: %w", err)
		}
		store = s
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          limiterPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance), nil
}
