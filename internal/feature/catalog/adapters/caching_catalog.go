package adapters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"trading_backend/internal/feature/catalog/domain/entity"
	"trading_backend/internal/feature/catalog/usecase"
	"trading_backend/internal/platform/cache"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis caching.
// The catalog changes only when it is reseeded, so entries live for the
// configured TTL and are dropped by Invalidate after a seed.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)

// NewCachingCatalogRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to cache.DefaultTTL. If namespace is empty, it uses "catalog".
// A nil rdb disables caching.
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingCatalogRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// ListStrategies returns strategies from the cache, loading them on a miss.
func (c *CachingCatalogRepository) ListStrategies(ctx context.Context, tier string) ([]entity.Strategy, error) {
	return cache.GetOrLoad(ctx, c.rdb, c.key("strategies", tier), c.ttl, func(ctx context.Context) ([]entity.Strategy, error) {
		return c.inner.ListStrategies(ctx, tier)
	})
}

// ListModels returns AI models from the cache, loading them on a miss.
func (c *CachingCatalogRepository) ListModels(ctx context.Context, tier string) ([]entity.AIModel, error) {
	return cache.GetOrLoad(ctx, c.rdb, c.key("models", tier), c.ttl, func(ctx context.Context) ([]entity.AIModel, error) {
		return c.inner.ListModels(ctx, tier)
	})
}

// Invalidate drops every cached catalog entry.
func (c *CachingCatalogRepository) Invalidate(ctx context.Context) error {
	return cache.DeleteByPattern(ctx, c.rdb, c.namespace+":*")
}

func (c *CachingCatalogRepository) key(kind, tier string) string {
	if tier == "" {
		tier = "all"
	}
	return cache.Key(c.namespace, kind, tier)
}
