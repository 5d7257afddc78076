package adapters

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/feature/catalog/domain/entity"
)

// mockCatalogRepository はテスト用のCatalogRepositoryモック実装です。
type mockCatalogRepository struct {
	strategyCalls int
	modelCalls    int
	strategies    []entity.Strategy
	models        []entity.AIModel
}

func (m *mockCatalogRepository) ListStrategies(ctx context.Context, tier string) ([]entity.Strategy, error) {
	m.strategyCalls++
	return m.strategies, nil
}

func (m *mockCatalogRepository) ListModels(ctx context.Context, tier string) ([]entity.AIModel, error) {
	m.modelCalls++
	return m.models, nil
}

// TestNewCachingCatalogRepository_Defaults はデフォルト値が設定されることを検証します。
func TestNewCachingCatalogRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingCatalogRepository(nil, 0, &mockCatalogRepository{}, "")
	assert.Equal(t, 5*time.Minute, repo.ttl)
	assert.Equal(t, "catalog", repo.namespace)
}

// TestCachingCatalogRepository_ListStrategies_Miss はキャッシュミス時に内部リポジトリを呼び、結果を保存することを検証します。
func TestCachingCatalogRepository_ListStrategies_Miss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockCatalogRepository{strategies: []entity.Strategy{{Name: "ICT Concept", Code: "ict", Tier: "pro"}}}
	b, _ := json.Marshal(inner.strategies)

	mock.ExpectGet("catalog:strategies:pro").RedisNil()
	mock.ExpectSet("catalog:strategies:pro", b, time.Hour).SetVal("OK")

	repo := NewCachingCatalogRepository(rdb, time.Hour, inner, "catalog")
	out, err := repo.ListStrategies(context.Background(), "pro")

	require.NoError(t, err)
	assert.Equal(t, inner.strategies, out)
	assert.Equal(t, 1, inner.strategyCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingCatalogRepository_ListModels_Hit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingCatalogRepository_ListModels_Hit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.AIModel{{Name: "Grok AI", Credits: "Variable", Tier: "max"}}
	b, _ := json.Marshal(cached)
	mock.ExpectGet("catalog:models:all").SetVal(string(b))

	inner := &mockCatalogRepository{}
	repo := NewCachingCatalogRepository(rdb, time.Hour, inner, "catalog")
	out, err := repo.ListModels(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Grok AI", out[0].Name)
	assert.Equal(t, 0, inner.modelCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingCatalogRepository_Invalidate はnamespace配下のキーを削除することを検証します。
func TestCachingCatalogRepository_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "catalog:*", 200).SetVal([]string{"catalog:models:all"}, 0)
	mock.ExpectDel("catalog:models:all").SetVal(1)

	repo := NewCachingCatalogRepository(rdb, time.Hour, &mockCatalogRepository{}, "catalog")
	require.NoError(t, repo.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
