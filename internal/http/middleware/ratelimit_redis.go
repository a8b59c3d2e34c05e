package middleware

import (
	"context"
	"strconv"
	"time"

	"language_connect/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for addr, or nil when addr is empty or the
// server does not answer, so callers can run without rate limiting.
func ConnectRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// RedisLimiter is a fixed-window limiter using INCR/EXPIRE.
// key format: rl:<window_seconds>:<identifier>
type RedisLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxRequests: maxRequests, window: window}
}

// Allow counts one request for ident. Redis errors are returned with
// allowed=true; the caller decides whether to log them.
func (l *RedisLimiter) Allow(ctx context.Context, ident string) (bool, error) {
	key := "rl:" + strconv.FormatInt(int64(l.window.Seconds()), 10) + ":" + ident

	val, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if val == 1 {
		// a counter without a TTL would block ident for good
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			_ = l.client.Del(ctx, key).Err()
			return true, err
		}
	}
	return val <= int64(l.maxRequests), nil
}
