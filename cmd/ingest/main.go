// Command ingest warms the quote cache: it walks the active catalog and
// pulls the full daily history for every symbol through the caching
// repository, so the first dashboard request of the day hits Redis.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"lq45_backend/internal/app/di"
	quotesusecase "lq45_backend/internal/feature/quotes/usecase"
	symboladapters "lq45_backend/internal/feature/symbollist/adapters"
	infradb "lq45_backend/internal/platform/db"
	infraredis "lq45_backend/internal/platform/redis"
	"lq45_backend/internal/shared/ratelimiter"
)

func main() {
	db := infradb.OpenDB()

	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		log.Fatal("[ERROR] Redis is required for cache warming: ", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	symbolRepo := symboladapters.NewSymbolRepository(db)
	quotes := quotesusecase.NewQuotesUsecase(di.NewMarket(rdb))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := symbolRepo.Seed(ctx); err != nil {
		slog.Warn("catalog seed failed", "error", err)
	}

	codes, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("[ERROR] Failed to list catalog symbols: ", err)
	}

	limiter := ratelimiter.NewRateLimiter(5, time.Minute)

	failed := 0
	for _, code := range codes {
		limiter.WaitIfNeeded()

		bars, err := quotes.GetFullHistory(ctx, code)
		if err != nil {
			failed++
			slog.Error("warm failed", "symbol", code, "error", err)
			continue
		}
		slog.Info("warmed", "symbol", code, "bars", len(bars))
	}

	slog.Info("cache warm finished", "symbols", len(codes), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
