// Package di provides dependency injection factories for creating
// application components.
package di

import (
	redisv9 "github.com/redis/go-redis/v9"

	"lq45_backend/internal/feature/quotes/adapters/yahoo"
	"lq45_backend/internal/platform/cache"
	infrahttp "lq45_backend/internal/platform/http"
)

// NewMarket creates the fully configured market repository: the Yahoo chart
// client wrapped in the Redis caching decorator. A nil Redis client disables
// caching without changing the call surface.
func NewMarket(rdb *redisv9.Client) *cache.CachingMarketRepository {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	market := yahoo.NewYahooMarket(cfg, httpClient)
	return cache.NewCachingMarketRepository(rdb, cache.RangedTTL, market, "quotes")
}
