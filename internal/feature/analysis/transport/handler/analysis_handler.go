// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/api"
	"trading_backend/internal/feature/analysis/domain"
	"trading_backend/internal/feature/analysis/domain/entity"
	"trading_backend/internal/feature/analysis/transport/http/dto"
)

const (
	// HeaderGranularityRequested は丸める前のgranularityを返すレスポンスヘッダーです。
	HeaderGranularityRequested = "X-Granularity-Requested"
	// HeaderGranularityEffective は実際に送信したgranularityを返すレスポンスヘッダーです。
	HeaderGranularityEffective = "X-Granularity-Effective"

	// statusClientClosedRequest は呼び出し元が先に切断した場合のステータスです。
	statusClientClosedRequest = 499
)

// AnalysisUsecase は分析ユースケースのインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	FetchAnalysis(ctx context.Context, pair, timeframe, strategy string, count int) (*entity.Result, error)
	FetchBatch(ctx context.Context, pair, timeframe string, strategies []string, count int) ([]entity.BatchItem, error)
}

// AnalysisHandler は分析リクエストのHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler は指定されたusecaseでAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は1つの戦略で分析を実行し、分析サービスのレスポンスをそのまま返します。
// 時間足が丸められた場合は X-Granularity-* ヘッダーで通知します。
//
// エンドポイント例:
// POST /analysis {"pair":"EUR/USD","timeframe":"1H","strategy":"Breakout Strategy"}
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.uc.FetchAnalysis(c.Request.Context(), req.Pair, req.Timeframe, req.Strategy, req.Count)
	if err != nil {
		h.fail(c, err)
		return
	}

	if res.GranularityAdjusted() {
		c.Header(HeaderGranularityRequested, res.RequestedGranularity)
		c.Header(HeaderGranularityEffective, res.Request.Granularity)
	}
	c.JSON(http.StatusOK, res.Response)
}

// AnalyzeBatch は最大3つの戦略を並行に実行します。
// 戦略ごとの失敗はレスポンス内の error に入り、全体のステータスは 200 のままです。
//
// エンドポイント例:
// POST /analysis/batch {"pair":"XAU/USD","timeframe":"4H","strategies":["ICT Concept","SMC Strategy"]}
func (h *AnalysisHandler) AnalyzeBatch(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	items, err := h.uc.FetchBatch(c.Request.Context(), req.Pair, req.Timeframe, req.Strategies, req.Count)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := dto.BatchResponse{Items: make([]dto.BatchItemResponse, 0, len(items))}
	for _, it := range items {
		item := dto.BatchItemResponse{Strategy: it.Strategy}
		if it.Err != nil {
			item.Error = it.Err.Error()
		} else {
			item.Result = it.Result.Response
			if it.Result.GranularityAdjusted() {
				item.GranularityRequested = it.Result.RequestedGranularity
				item.GranularityEffective = it.Result.Request.Granularity
			}
		}
		out.Items = append(out.Items, item)
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalysisHandler) fail(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("analysis request failed", "status", status, "error", err)
	}
	c.JSON(status, api.ErrorResponse{Error: err.Error()})
}

// StatusFor はエラーをHTTPステータスに対応付けます。
func StatusFor(err error) int {
	// 使い切った場合は全試行のエラーを含むため、最後の試行の種類で判定する
	var ee *domain.ExhaustedError
	if errors.As(err, &ee) && ee.Kind != nil {
		err = ee.Kind
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTimeframe),
		errors.Is(err, domain.ErrInvalidCount),
		errors.Is(err, domain.ErrTooManyStrategies):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrConnectivity):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrClientResponse),
		errors.Is(err, domain.ErrServerResponse),
		errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
