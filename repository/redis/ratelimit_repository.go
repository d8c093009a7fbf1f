package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	goredis "github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "validate:"

// Repository throttles credential checks using Redis-backed GCRA counters.
type Repository interface {
	// AllowAttempt consumes one attempt for key and reports whether it was allowed,
	// along with how long the caller should wait when it was not.
	AllowAttempt(ctx context.Context, key string) (bool, time.Duration, error)
}

type redis struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRepository returns a limiter allowing perMinute attempts per key. A nil client or
// non-positive perMinute disables throttling.
func NewRepository(client *goredis.Client, perMinute int) Repository {
	if client == nil || perMinute <= 0 {
		return noop{}
	}
	return &redis{
		limiter: redis_rate.NewLimiter(client),
		limit:   redis_rate.PerMinute(perMinute),
	}
}

func (r *redis) AllowAttempt(ctx context.Context, key string) (bool, time.Duration, error) {
	res, err := r.limiter.Allow(ctx, attemptKeyPrefix+key, r.limit)
	if err != nil {
		return false, 0, err
	}
	return res.Allowed > 0, res.RetryAfter, nil
}

type noop struct{}

func (noop) AllowAttempt(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}
