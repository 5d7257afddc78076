package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	sessionadapters "trading_backend/internal/feature/session/adapters"
	"trading_backend/internal/feature/session/usecase"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational store.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return sessionadapters.NewSessionRedis(rdb, "session")
	}
	return sessionadapters.NewSessionGorm(db)
}
