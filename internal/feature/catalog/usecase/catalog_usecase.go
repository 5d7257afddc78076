// Package usecase はカタログ（戦略・AIモデル）参照のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"trading_backend/internal/feature/catalog/domain"
	"trading_backend/internal/feature/catalog/domain/entity"
)

// CatalogRepository はカタログの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CatalogRepository interface {
	ListStrategies(ctx context.Context, tier string) ([]entity.Strategy, error)
	ListModels(ctx context.Context, tier string) ([]entity.AIModel, error)
}

// CatalogUsecase はカタログ参照のユースケースです。
type CatalogUsecase struct {
	repo CatalogRepository
}

// NewCatalogUsecase はCatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(repo CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

// Strategies は戦略の一覧を返します。tier が空の場合はすべてのtierを返します。
func (u *CatalogUsecase) Strategies(ctx context.Context, tier string) ([]entity.Strategy, error) {
	t, err := normalizeTier(tier)
	if err != nil {
		return nil, err
	}
	return u.repo.ListStrategies(ctx, t)
}

// Models はAIモデルの一覧を返します。tier が空の場合はすべてのtierを返します。
func (u *CatalogUsecase) Models(ctx context.Context, tier string) ([]entity.AIModel, error) {
	t, err := normalizeTier(tier)
	if err != nil {
		return nil, err
	}
	return u.repo.ListModels(ctx, t)
}

func normalizeTier(tier string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(tier))
	if t == "" || slices.Contains(entity.Tiers, t) {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
}
