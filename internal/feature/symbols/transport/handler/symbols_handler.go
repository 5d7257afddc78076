// Package handler はsymbolsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/api"
	"trading_backend/internal/feature/symbols/domain"
	"trading_backend/internal/feature/symbols/domain/entity"
	"trading_backend/internal/feature/symbols/transport/http/dto"
)

// SymbolsUsecase は銘柄に関するユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SymbolsUsecase interface {
	ListPairs(category string) ([]entity.PairGroup, error)
	ResolveChart(label, timeframe string) entity.ChartConfig
}

// SymbolsHandler は銘柄一覧とチャート設定のHTTPリクエストを処理します。
type SymbolsHandler struct {
	uc SymbolsUsecase
}

// NewSymbolsHandler は新しい SymbolsHandler を作成します。
func NewSymbolsHandler(uc SymbolsUsecase) *SymbolsHandler {
	return &SymbolsHandler{uc: uc}
}

// List はカテゴリごとの銘柄ラベル一覧を返します。
//
// エンドポイント例:
// GET /symbols?category=crypto
func (h *SymbolsHandler) List(c *gin.Context) {
	groups, err := h.uc.ListPairs(c.Query("category"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnknownCategory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.PairGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.PairGroupResponse{Category: g.Category, Pairs: g.Pairs})
	}
	c.JSON(http.StatusOK, out)
}

// Resolve は銘柄ラベルをチャートウィジェットの設定に変換します。
// timeframe 未指定時は 1時間足です。
//
// エンドポイント例:
// GET /symbols/resolve?pair=NIFTY%2050&timeframe=15M
func (h *SymbolsHandler) Resolve(c *gin.Context) {
	pair := c.Query("pair")
	if strings.TrimSpace(pair) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "pair is required"})
		return
	}
	timeframe := c.DefaultQuery("timeframe", "1H")

	cfg := h.uc.ResolveChart(pair, timeframe)
	c.JSON(http.StatusOK, dto.ChartConfigResponse{
		Label:             cfg.Label,
		Symbol:            cfg.ProviderSymbol,
		Interval:          cfg.Interval,
		RequestedInterval: cfg.RequestedInterval,
		LimitedTimeframes: cfg.LimitedTimeframes,
		IntervalAdjusted:  cfg.IntervalAdjusted,
		AllowSymbolChange: cfg.AllowSymbolChange,
		APIInstrument:     cfg.APIInstrument,
		Notice:            cfg.Notice,
	})
}
