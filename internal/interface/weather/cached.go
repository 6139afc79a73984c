package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/internal/infrastructure/cache"
	"airnova-service/pkg/logger"
)

// CachedProvider wraps a WeatherProvider with a redis TTL cache. Cache
// failures are logged and treated as misses; a miss just means one more
// provider call.
type CachedProvider struct {
	inner  repository.WeatherProvider
	cache  *cache.RedisCache
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedProvider wraps inner with a redis cache keyed per airport.
func NewCachedProvider(inner repository.WeatherProvider, redisCache *cache.RedisCache, ttl time.Duration, logger logger.Logger) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		cache:  redisCache,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(airportCode string) string {
	return fmt.Sprintf("airnova:weather:%s", strings.ToUpper(airportCode))
}

// FetchCurrent serves from cache when possible, otherwise delegates and
// stores the fresh report.
func (p *CachedProvider) FetchCurrent(ctx context.Context, airportCode string) (*entity.WeatherReport, error) {
	key := cacheKey(airportCode)

	var cached entity.WeatherReport
	hit, err := p.cache.Get(ctx, key, &cached)
	if err != nil {
		p.logger.Warn("weather cache read failed", "airport", airportCode, "error", err)
	} else if hit {
		return &cached, nil
	}

	report, err := p.inner.FetchCurrent(ctx, airportCode)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, report, p.ttl); err != nil {
		p.logger.Warn("weather cache write failed", "airport", airportCode, "error", err)
	}
	return report, nil
}
