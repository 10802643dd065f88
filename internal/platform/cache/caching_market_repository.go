// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/feature/quotes/domain/entity"
	"lq45_backend/internal/feature/quotes/usecase"
)

// RangedTTL bounds how long a ranged fetch may be served from cache before
// the upstream provider is asked again.
const RangedTTL = 6 * time.Hour

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// Ranged fetches expire after RangedTTL; full-history fetches live until the
// next Jakarta market close, since history is append-only and gains at most
// one bar per session. A rate-limit error from the upstream drops the
// affected key so the next request retries the fetch instead of replaying a
// cached failure.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	rangedTTL time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to RangedTTL. If namespace is empty, it uses "quotes".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = RangedTTL
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		rangedTTL: ttl,
		namespace: namespace,
	}
}

// GetDailyBars retrieves bars, checking cache first then falling back to the
// upstream provider.
func (c *CachingMarketRepository) GetDailyBars(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetDailyBars(ctx, symbol, period)
	}

	key := c.cacheKey(symbol, period)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.GetDailyBars(ctx, symbol, period)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			// Drop whatever was cached for this key so the next request
			// goes back upstream once the limit clears.
			_ = c.rdb.Del(ctx, key).Err()
		}
		return nil, err
	}

	// 3) Store in cache (best effort); empty results are not cached so a
	// retrieval gap does not stick for a whole TTL.
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttlFor(period)).Err()
		}
	}

	return out, nil
}

// Invalidate removes the cached entry for one (symbol, period) key.
func (c *CachingMarketRepository) Invalidate(ctx context.Context, symbol, period string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(symbol, period)).Err()
}

// ttlFor picks the TTL class for a period: full history survives until the
// next market close, everything else uses the bounded ranged TTL.
func (c *CachingMarketRepository) ttlFor(period string) time.Duration {
	if period == usecase.PeriodMax {
		return TimeUntilJakartaClose()
	}
	return c.rangedTTL
}

// cacheKey generates a cache key for a specific query.
func (c *CachingMarketRepository) cacheKey(symbol, period string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(symbol), safe(period))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
