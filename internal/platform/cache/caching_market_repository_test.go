package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/feature/quotes/domain/entity"
)

// mockMarketRepository is a test mock for the MarketRepository interface.
type mockMarketRepository struct {
	getDailyBarsFn func(ctx context.Context, symbol, period string) ([]entity.Bar, error)
}

func (m *mockMarketRepository) GetDailyBars(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
	if m.getDailyBarsFn != nil {
		return m.getDailyBarsFn(ctx, symbol, period)
	}
	return nil, nil
}

func sampleBars() []entity.Bar {
	return []entity.Bar{
		{Symbol: "BBCA.JK", Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Close: 9500},
		{Symbol: "BBCA.JK", Time: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Close: 9600},
	}
}

func TestNewCachingMarketRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       RangedTTL,
			expectedNamespace: "quotes",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       RangedTTL,
			expectedNamespace: "quotes",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingMarketRepository(nil, tt.ttl, &mockMarketRepository{}, tt.namespace)

			if repo.rangedTTL != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.rangedTTL)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingMarketRepository_GetDailyBars_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			return sampleBars(), nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingMarketRepository(nil, RangedTTL, inner, "quotes")

	bars, err := repo.GetDailyBars(context.Background(), "BBCA.JK", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("expected 2 bars, got %d", len(bars))
	}
}

func TestCachingMarketRepository_GetDailyBars_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(sampleBars())
	mock.ExpectGet("quotes:BBCA.JK:6mo").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingMarketRepository(rdb, RangedTTL, inner, "quotes")
	bars, err := repo.GetDailyBars(context.Background(), "BBCA.JK", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(bars) != 2 {
		t.Errorf("expected 2 bars, got %d", len(bars))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMarketRepository_GetDailyBars_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedBars := sampleBars()
	expectedJSON, _ := json.Marshal(expectedBars)

	// Cache miss, then stored with the ranged TTL
	mock.ExpectGet("quotes:BBCA.JK:6mo").RedisNil()
	mock.ExpectSet("quotes:BBCA.JK:6mo", expectedJSON, RangedTTL).SetVal("OK")

	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			return expectedBars, nil
		},
	}

	repo := NewCachingMarketRepository(rdb, RangedTTL, inner, "quotes")
	bars, err := repo.GetDailyBars(context.Background(), "BBCA.JK", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("expected 2 bars, got %d", len(bars))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMarketRepository_GetDailyBars_EmptyResultNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	// Only a Get is expected; an empty fetch must not be stored.
	mock.ExpectGet("quotes:ZZZZ.JK:6mo").RedisNil()

	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			return nil, nil
		},
	}

	repo := NewCachingMarketRepository(rdb, RangedTTL, inner, "quotes")
	bars, err := repo.GetDailyBars(context.Background(), "ZZZZ.JK", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("expected no bars, got %d", len(bars))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMarketRepository_GetDailyBars_RateLimitDropsKey(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("quotes:BBCA.JK:6mo").RedisNil()
	mock.ExpectDel("quotes:BBCA.JK:6mo").SetVal(1)

	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			return nil, domain.ErrRateLimited
		},
	}

	repo := NewCachingMarketRepository(rdb, RangedTTL, inner, "quotes")
	_, err := repo.GetDailyBars(context.Background(), "BBCA.JK", "6mo")

	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMarketRepository_GetDailyBars_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedBars := sampleBars()
	expectedJSON, _ := json.Marshal(expectedBars)

	// Corrupted entry is deleted, then the fetch proceeds and re-caches.
	mock.ExpectGet("quotes:BBCA.JK:6mo").SetVal("{corrupted")
	mock.ExpectDel("quotes:BBCA.JK:6mo").SetVal(1)
	mock.ExpectSet("quotes:BBCA.JK:6mo", expectedJSON, RangedTTL).SetVal("OK")

	inner := &mockMarketRepository{
		getDailyBarsFn: func(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
			return expectedBars, nil
		},
	}

	repo := NewCachingMarketRepository(rdb, RangedTTL, inner, "quotes")
	bars, err := repo.GetDailyBars(context.Background(), "BBCA.JK", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("expected 2 bars, got %d", len(bars))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMarketRepository_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("quotes:BBCA.JK:max").SetVal(1)

	repo := NewCachingMarketRepository(rdb, RangedTTL, &mockMarketRepository{}, "quotes")

	if err := repo.Invalidate(context.Background(), "BBCA.JK", "max"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}

	// Nil Redis is a no-op.
	noCache := NewCachingMarketRepository(nil, RangedTTL, &mockMarketRepository{}, "quotes")
	if err := noCache.Invalidate(context.Background(), "BBCA.JK", "max"); err != nil {
		t.Errorf("expected nil error without Redis, got %v", err)
	}
}

func TestCachingMarketRepository_CacheKeyEscaping(t *testing.T) {
	t.Parallel()

	repo := NewCachingMarketRepository(nil, RangedTTL, &mockMarketRepository{}, "quotes")

	got := repo.cacheKey("BAD SYM:BOL", "6mo")
	want := "quotes:BAD_SYM_BOL:6mo"
	if got != want {
		t.Errorf("expected key %q, got %q", want, got)
	}
}

func TestCachingMarketRepository_TTLClass(t *testing.T) {
	t.Parallel()

	repo := NewCachingMarketRepository(nil, RangedTTL, &mockMarketRepository{}, "quotes")

	if got := repo.ttlFor("6mo"); got != RangedTTL {
		t.Errorf("expected ranged TTL %v, got %v", RangedTTL, got)
	}
	// Full history lives until the next Jakarta close: always a positive
	// duration no longer than a day.
	maxTTL := repo.ttlFor("max")
	if maxTTL <= 0 || maxTTL > 24*time.Hour {
		t.Errorf("expected max TTL within (0, 24h], got %v", maxTTL)
	}
}
