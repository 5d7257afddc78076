package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/feature/session/domain"
	"trading_backend/internal/feature/session/domain/entity"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(id string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		Subject:   "user-1",
		Email:     "trader@example.com",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionRedis_SaveAndFind(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	s := createTestSession("digest-001", time.Hour)
	require.NoError(t, repo.Save(ctx, s))

	ttl := mr.TTL("session:digest-001")
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	got, err := repo.FindByID(ctx, "digest-001")
	require.NoError(t, err)
	assert.Equal(t, s.Subject, got.Subject)
	assert.Equal(t, s.Email, got.Email)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionRedis_Save_Expired(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	err := repo.Save(context.Background(), createTestSession("old", -time.Minute))
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.False(t, mr.Exists("session:old"))
}

func TestSessionRedis_FindByID_TTLExpiry(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestSession("short", time.Minute)))
	mr.FastForward(2 * time.Minute)

	_, err := repo.FindByID(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRedis_FindByID_Corrupt(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	require.NoError(t, mr.Set("session:bad", "not-json"))

	_, err := repo.FindByID(context.Background(), "bad")
	assert.ErrorContains(t, err, "failed to unmarshal session")
}

func TestSessionRedis_Delete(t *testing.T) {
	t.Parallel()

	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestSession("digest-002", time.Hour)))
	require.NoError(t, repo.Delete(ctx, "digest-002"))

	assert.ErrorIs(t, repo.Delete(ctx, "digest-002"), domain.ErrSessionNotFound)
	_, err := repo.FindByID(ctx, "digest-002")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRedis_DeleteExpired(t *testing.T) {
	t.Parallel()

	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	n, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
