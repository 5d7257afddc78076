// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/api"
	"trading_backend/internal/feature/catalog/domain"
	"trading_backend/internal/feature/catalog/domain/entity"
	"trading_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はカタログ参照のユースケースインターフェースです。
type CatalogUsecase interface {
	Strategies(ctx context.Context, tier string) ([]entity.Strategy, error)
	Models(ctx context.Context, tier string) ([]entity.AIModel, error)
}

// CatalogHandler はカタログに関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Strategies は戦略の一覧を返します。
//
// エンドポイント例:
// GET /catalog/strategies?tier=pro
func (h *CatalogHandler) Strategies(c *gin.Context) {
	list, err := h.uc.Strategies(c.Request.Context(), c.Query("tier"))
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]dto.StrategyItem, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StrategyItem{
			Name: s.Name, Code: s.Code, Credits: s.Credits, WinRate: s.WinRate, Risk: s.Risk, Tier: s.Tier,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Models はAIモデルの一覧を返します。
//
// エンドポイント例:
// GET /catalog/models?tier=free
func (h *CatalogHandler) Models(c *gin.Context) {
	list, err := h.uc.Models(c.Request.Context(), c.Query("tier"))
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]dto.ModelItem, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ModelItem{
			Name: m.Name, Description: m.Description, Credits: m.Credits, Accuracy: m.Accuracy, Tier: m.Tier,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnknownTier) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error("catalog query failed", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
