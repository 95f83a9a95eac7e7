package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"findmyrun.app/metrics"
	"findmyrun.app/providers/cache"
)

// GeocodeCacheProxy wraps a GeocodeProvider with a cache so repeated
// approvals of clubs in the same place skip the upstream API.
type GeocodeCacheProxy struct {
	provider GeocodeProvider
	cache    cache.CacheInterface
	ttl      time.Duration
}

// NewGeocodeCacheProxy creates a caching proxy around a geocode provider
func NewGeocodeCacheProxy(provider GeocodeProvider, cacheBackend cache.CacheInterface, ttl time.Duration) *GeocodeCacheProxy {
	return &GeocodeCacheProxy{
		provider: provider,
		cache:    cacheBackend,
		ttl:      ttl,
	}
}

// Geocode serves from cache when possible, delegating misses upstream
func (p *GeocodeCacheProxy) Geocode(meetingPoint, area, city string) *GeocodeResult {
	ctx := context.Background()
	key := fmt.Sprintf("geocode:%s|%s|%s", meetingPoint, area, city)

	if data, found := p.cache.Get(ctx, key); found {
		var result GeocodeResult
		if err := json.Unmarshal(data, &result); err == nil {
			metrics.Collector().CacheHits.WithLabelValues("geocode").Inc()
			return &result
		}
	}

	metrics.Collector().CacheMisses.WithLabelValues("geocode").Inc()
	result := p.provider.Geocode(meetingPoint, area, city)
	if result.Confidence == ConfidenceLow {
		metrics.Collector().GeocodeFallbacks.Inc()
	}

	if data, err := json.Marshal(result); err == nil {
		p.cache.Set(ctx, key, data, p.ttl)
	}

	return result
}
