package providers

import (
	"log/slog"
	"time"

	"findmyrun.app/config"
	"findmyrun.app/providers/cache"
)

// NewCacheBackend builds the configured cache backend, falling back to the
// in-process cache when redis is unavailable.
func NewCacheBackend(cfg *config.CacheConfig) cache.CacheInterface {
	if cfg.Type == "redis" {
		redisCache, err := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err == nil {
			return redisCache
		}
		slog.Warn("Redis unavailable, falling back to memory cache", "error", err)
	}

	return cache.NewMemoryCache()
}
