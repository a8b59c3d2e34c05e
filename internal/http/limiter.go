package http

import (
	"language_connect/internal/config"
	"language_connect/internal/gateway"
	"language_connect/internal/http/middleware"
)

// NewLimiter returns a Redis-backed limiter when Redis is reachable.
// Otherwise local selects a per-process limiter, and without it requests
// are not limited. Lambda containers pass local=false: their memory is not
// shared and is recycled at will.
func NewLimiter(cfg *config.Config, local bool) gateway.Limiter {
	if rdb := middleware.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
		return middleware.NewRedisLimiter(rdb, cfg.APIRateLimit, cfg.APIRateWindow)
	}
	if local {
		return middleware.NewMemoryLimiter(cfg.APIRateLimit, cfg.APIRateWindow)
	}
	return nil
}
