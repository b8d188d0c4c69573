package flightprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Limiter gates outbound backend requests. Allow blocks until the request may be sent
// and reports false when that would outlive the deadline of ctx.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter shares one budget across every instance of the service.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

func NewRedisLimiter(limiter *redis_rate.Limiter, rps int) *RedisLimiter {
	return &RedisLimiter{
		limiter: limiter,
		limit:   redis_rate.PerSecond(rps),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	for {
		// distributed rate limit using leaky bucket
		res, err := l.limiter.Allow(ctx, fmt.Sprintf("limit:%s", key), l.limit)
		if err != nil {
			return false, err
		}

		if res.Allowed > 0 {
			return true, nil
		}

		if res.RetryAfter <= 0 {
			return false, nil
		}

		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < res.RetryAfter {
			return false, nil
		}

		select {
		case <-time.After(res.RetryAfter):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

// LocalLimiter is an in-process token bucket.
type LocalLimiter struct {
	limiter *rate.Limiter
}

// NewLocalLimiter allows rps requests per second with a burst of rps. A non-positive
// rps disables limiting.
func NewLocalLimiter(rps int) *LocalLimiter {
	if rps <= 0 {
		return &LocalLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}

	return &LocalLimiter{limiter: rate.NewLimiter(rate.Limit(rps), rps)}
}

func (l *LocalLimiter) Allow(ctx context.Context, _ string) (bool, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return false, nil
	}

	return true, nil
}
