package di

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading_backend/internal/config"
	sessionadapters "trading_backend/internal/feature/session/adapters"
)

func TestNewSessionRepository(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	assert.IsType(t, &sessionadapters.SessionRedis{}, NewSessionRepository(rdb, db))
	assert.NotNil(t, NewSessionRepository(nil, db))
	_, isRedis := NewSessionRepository(nil, db).(*sessionadapters.SessionRedis)
	assert.False(t, isRedis, "falls back to the relational store without Redis")
}

func TestNewAnalysisClient(t *testing.T) {
	t.Parallel()

	c := NewAnalysisClient(config.AnalysisConfig{
		BaseURLs:   []string{"https://a.test", "https://b.test"},
		MaxRetries: 3,
		Timeout:    10 * time.Second,
	})
	// 2 × (3×10s + 1s + 2s)
	assert.Equal(t, 66*time.Second, c.WorstCaseDuration())
}

func TestNewCatalogRepository(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	assert.NotNil(t, NewCatalogRepository(nil, db, time.Minute))
}
