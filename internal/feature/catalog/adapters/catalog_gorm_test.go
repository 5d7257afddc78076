package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading_backend/internal/feature/catalog/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// インメモリDBは接続ごとに別物になるため1接続に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.Strategy{}, &entity.AIModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedTestDB(t *testing.T, db *gorm.DB) *catalogGorm {
	t.Helper()

	doc, err := LoadSeed()
	require.NoError(t, err)

	repo := NewCatalogRepository(db)
	require.NoError(t, repo.Seed(context.Background(), doc))
	return repo
}

// TestCatalogGorm_ListStrategies は並び順とtier絞り込みを検証します。
func TestCatalogGorm_ListStrategies(t *testing.T) {
	t.Parallel()

	repo := seedTestDB(t, setupTestDB(t))

	all, err := repo.ListStrategies(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "Breakout Strategy", all[0].Name)
	assert.Equal(t, "Custom Strategy Builder", all[6].Name)

	pro, err := repo.ListStrategies(context.Background(), entity.TierPro)
	require.NoError(t, err)
	names := make([]string, 0, len(pro))
	for _, s := range pro {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"ICT Concept", "SMC Strategy"}, names)
}

// TestCatalogGorm_ListModels は並び順とtier絞り込みを検証します。
func TestCatalogGorm_ListModels(t *testing.T) {
	t.Parallel()

	repo := seedTestDB(t, setupTestDB(t))

	free, err := repo.ListModels(context.Background(), entity.TierFree)
	require.NoError(t, err)
	require.Len(t, free, 4)
	assert.Equal(t, "Claude Haiku", free[0].Name)
	assert.Equal(t, 78, free[0].Accuracy)

	none, err := repo.ListModels(context.Background(), "enterprise")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestCatalogGorm_Seed_Idempotent は再シードで更新・削除が反映され、重複しないことを検証します。
func TestCatalogGorm_Seed_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := seedTestDB(t, db)

	// 同じ内容での再シードは件数を変えない
	doc, err := LoadSeed()
	require.NoError(t, err)
	require.NoError(t, repo.Seed(context.Background(), doc))
	require.NoError(t, repo.Seed(context.Background(), doc))

	var count int64
	require.NoError(t, db.Model(&entity.Strategy{}).Count(&count).Error)
	assert.Equal(t, int64(7), count)

	// 更新と削除
	doc.Strategies = doc.Strategies[:2]
	doc.Strategies[0].Credits = 3
	doc.Models = nil
	require.NoError(t, repo.Seed(context.Background(), doc))

	list, err := repo.ListStrategies(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Credits)

	models, err := repo.ListModels(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, models)
}
