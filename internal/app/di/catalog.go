package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "trading_backend/internal/feature/catalog/adapters"
)

// NewCatalogRepository wraps the relational catalog with the Redis cache.
// With a nil rdb the decorator passes every call through.
func NewCatalogRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) *catalogadapters.CachingCatalogRepository {
	return catalogadapters.NewCachingCatalogRepository(rdb, ttl, catalogadapters.NewCatalogRepository(db), "catalog")
}
