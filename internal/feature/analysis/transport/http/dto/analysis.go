package dto

import "trading_backend/internal/feature/analysis/domain/entity"

// AnalysisRequest は POST /analysis のリクエストボディです。
// 値は画面の表記のまま（"EUR/USD", "15M", "Breakout Strategy"）受け付けます。
type AnalysisRequest struct {
	Pair      string `json:"pair" binding:"required"`      // 銘柄ラベル
	Timeframe string `json:"timeframe" binding:"required"` // 時間足
	Strategy  string `json:"strategy"`                     // 戦略名（未指定・未知の場合は breakout）
	Count     int    `json:"count"`                        // ローソク足件数（0 はデフォルト）
}

// BatchRequest は POST /analysis/batch のリクエストボディです。
type BatchRequest struct {
	Pair       string   `json:"pair" binding:"required"`
	Timeframe  string   `json:"timeframe" binding:"required"`
	Strategies []string `json:"strategies" binding:"required"`
	Count      int      `json:"count"`
}

// BatchItemResponse は戦略ごとの結果です。成功時は result、失敗時は error のみを持ちます。
type BatchItemResponse struct {
	Strategy             string           `json:"strategy"`
	Result               *entity.Response `json:"result,omitempty"`
	Error                string           `json:"error,omitempty"`
	GranularityRequested string           `json:"granularity_requested,omitempty"`
	GranularityEffective string           `json:"granularity_effective,omitempty"`
}

// BatchResponse は POST /analysis/batch のレスポンスボディです。
type BatchResponse struct {
	Items []BatchItemResponse `json:"items"`
}
