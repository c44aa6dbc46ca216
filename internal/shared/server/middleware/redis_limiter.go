package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindow counts hits per key and arms the expiry on the first hit.
var fixedWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {count, ttl}
`)

// RedisLimiter shares a fixed-window limit across instances. Each window
// admits Burst requests and lasts Burst/Rate seconds.
type RedisLimiter struct {
	client redis.Scripter
	prefix string
}

// NewRedisLimiter builds a limiter on client. An empty prefix uses "ratelimit".
func NewRedisLimiter(client redis.Scripter, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{client: client, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, rule RateLimitRule) (bool, time.Duration, error) {
	if rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0, nil
	}
	window := time.Duration(float64(rule.Burst) / rule.Rate * float64(time.Second))
	if window < time.Millisecond {
		window = time.Millisecond
	}
	res, err := fixedWindow.Run(ctx, l.client, []string{l.prefix + ":" + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("rate limit script: unexpected reply %v", res)
	}
	if res[0] <= int64(rule.Burst) {
		return true, 0, nil
	}
	ttl := time.Duration(res[1]) * time.Millisecond
	if ttl <= 0 {
		ttl = window
	}
	return false, ttl, nil
}
