package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"lq45_backend/internal/app/di"
	"lq45_backend/internal/app/router"
	authadapters "lq45_backend/internal/feature/auth/adapters"
	authhandler "lq45_backend/internal/feature/auth/transport/handler"
	authusecase "lq45_backend/internal/feature/auth/usecase"
	comparehandler "lq45_backend/internal/feature/compare/transport/handler"
	compareusecase "lq45_backend/internal/feature/compare/usecase"
	crossoverhandler "lq45_backend/internal/feature/crossover/transport/handler"
	crossoverusecase "lq45_backend/internal/feature/crossover/usecase"
	quotesusecase "lq45_backend/internal/feature/quotes/usecase"
	rawdatahandler "lq45_backend/internal/feature/rawdata/transport/handler"
	rawdatausecase "lq45_backend/internal/feature/rawdata/usecase"
	symboladapters "lq45_backend/internal/feature/symbollist/adapters"
	symbolhandler "lq45_backend/internal/feature/symbollist/transport/handler"
	symbolusecase "lq45_backend/internal/feature/symbollist/usecase"
	infradb "lq45_backend/internal/platform/db"
	jwtmw "lq45_backend/internal/platform/jwt"
	infraredis "lq45_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without quote cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	symbolRepo := symboladapters.NewSymbolRepository(db)
	marketRepo := di.NewMarket(rdb)

	// Seed the LQ45 catalog (idempotent upsert).
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := symbolRepo.Seed(seedCtx); err != nil {
		slog.Warn("catalog seed failed", "error", err)
	}
	cancel()

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(secret, 24*time.Hour)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
	quotesUC := quotesusecase.NewQuotesUsecase(marketRepo)
	compareUC := compareusecase.NewCompareUsecase(quotesUC)
	crossoverUC := crossoverusecase.NewCrossoverUsecase(quotesUC)
	rawdataUC := rawdatausecase.NewRawdataUsecase(quotesUC)

	// Default comparison set for requests without a stocks parameter.
	defaults, err := symbolUC.DefaultSelection(context.Background())
	if err != nil {
		log.Fatal("failed to load default selection: ", err)
	}

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	compareH := comparehandler.NewCompareHandler(compareUC, defaults)
	crossoverH := crossoverhandler.NewCrossoverHandler(crossoverUC)
	rawdataH := rawdatahandler.NewRawdataHandler(rawdataUC)
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)

	r := router.NewRouter(authH, compareH, crossoverH, rawdataH, symbolH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
