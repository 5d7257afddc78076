// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading_backend/internal/feature/catalog/domain/entity"
	"trading_backend/internal/feature/catalog/usecase"
)

// catalogGorm はCatalogRepositoryインターフェースのGORM実装です。
type catalogGorm struct {
	db *gorm.DB
}

var _ usecase.CatalogRepository = (*catalogGorm)(nil)

// NewCatalogRepository は指定されたDB接続でcatalogGormリポジトリの新しいインスタンスを生成します。
func NewCatalogRepository(db *gorm.DB) *catalogGorm {
	return &catalogGorm{db: db}
}

// ListStrategies はsort_key順に戦略を返します。tier が空でない場合はそのtierのみを返します。
func (r *catalogGorm) ListStrategies(ctx context.Context, tier string) ([]entity.Strategy, error) {
	var out []entity.Strategy
	q := r.db.WithContext(ctx).Order("sort_key ASC")
	if tier != "" {
		q = q.Where("tier = ?", tier)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListModels はsort_key順にAIモデルを返します。tier が空でない場合はそのtierのみを返します。
func (r *catalogGorm) ListModels(ctx context.Context, tier string) ([]entity.AIModel, error) {
	var out []entity.AIModel
	q := r.db.WithContext(ctx).Order("sort_key ASC")
	if tier != "" {
		q = q.Where("tier = ?", tier)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Seed はドキュメントの内容でカタログを置き換えます。
// 名前をキーにupsertし、ドキュメントにない行は削除します。何度実行しても結果は同じです。
func (r *catalogGorm) Seed(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "credits", "win_rate", "risk", "tier", "sort_key"}),
		}
		names := make([]string, 0, len(doc.Strategies))
		for _, s := range doc.Strategies {
			names = append(names, s.Name)
		}
		if len(doc.Strategies) > 0 {
			rows := slices.Clone(doc.Strategies)
			for i := range rows {
				rows[i].ID = 0
			}
			if err := tx.Clauses(upsert).Create(&rows).Error; err != nil {
				return err
			}
		}
		if err := deleteMissing(tx, &entity.Strategy{}, names); err != nil {
			return err
		}

		upsert.DoUpdates = clause.AssignmentColumns([]string{"description", "credits", "accuracy", "tier", "sort_key"})
		names = names[:0]
		for _, m := range doc.Models {
			names = append(names, m.Name)
		}
		if len(doc.Models) > 0 {
			rows := slices.Clone(doc.Models)
			for i := range rows {
				rows[i].ID = 0
			}
			if err := tx.Clauses(upsert).Create(&rows).Error; err != nil {
				return err
			}
		}
		return deleteMissing(tx, &entity.AIModel{}, names)
	})
}

func deleteMissing(tx *gorm.DB, model any, keep []string) error {
	q := tx.Model(model)
	if len(keep) > 0 {
		q = q.Where("name NOT IN ?", keep)
	} else {
		q = q.Where("1 = 1")
	}
	return q.Delete(model).Error
}
