// Package usecase は分析リクエストの組み立てと実行のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"trading_backend/internal/feature/analysis/domain"
	"trading_backend/internal/feature/analysis/domain/entity"
	"trading_backend/internal/shared/instrument"
)

const (
	// DefaultCount はローソク足件数が未指定の場合のデフォルト値です。
	DefaultCount = 100
	// MaxCount はローソク足件数の上限です。
	MaxCount = 5000
	// MaxBatchStrategies は一度に実行できる戦略数の上限です（画面の選択上限と同じ）。
	MaxBatchStrategies = 3
)

// AnalysisClient はリモートの分析サービスを呼び出すクライアントのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AnalysisClient interface {
	// FetchAnalysis は正規化済みのリクエストを送信し、レスポンスをそのまま返します。
	FetchAnalysis(ctx context.Context, req entity.Request) (*entity.Response, error)
}

// AnalysisUsecase は画面の選択（銘柄・時間足・戦略）を分析リクエストに変換して実行します。
type AnalysisUsecase struct {
	client AnalysisClient
}

// NewAnalysisUsecase はAnalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(client AnalysisClient) *AnalysisUsecase {
	return &AnalysisUsecase{client: client}
}

// BuildRequest は画面の語彙をAPIの語彙に変換します。ネットワークI/Oは行いません。
// 戻り値の2つ目は、時間足制限で丸める前のgranularityです。
func (u *AnalysisUsecase) BuildRequest(pair, timeframe, strategy string, count int) (entity.Request, string, error) {
	if count == 0 {
		count = DefaultCount
	}
	if count < 0 || count > MaxCount {
		return entity.Request{}, "", fmt.Errorf("%w: %d (must be 1..%d)", domain.ErrInvalidCount, count, MaxCount)
	}

	granularity, err := FormatGranularity(timeframe)
	if err != nil {
		return entity.Request{}, "", err
	}

	requested := granularity
	// 日足・週足・月足しか提供されない銘柄は D1 に丸める
	if instrument.IsRestricted(pair) && !isCoarse(granularity) {
		granularity = GranularityDaily
	}

	return entity.Request{
		Instrument:  instrument.NormalizeForAPI(pair),
		Granularity: granularity,
		Strategy:    StrategyCode(strategy),
		Count:       count,
	}, requested, nil
}

// FetchAnalysis は分析を1件実行します。
// granularityが丸められた場合は Result.GranularityAdjusted が true になります。
func (u *AnalysisUsecase) FetchAnalysis(ctx context.Context, pair, timeframe, strategy string, count int) (*entity.Result, error) {
	req, requested, err := u.BuildRequest(pair, timeframe, strategy, count)
	if err != nil {
		return nil, err
	}

	if requested != req.Granularity {
		slog.Info("granularity clamped for restricted instrument",
			"pair", pair, "requested", requested, "effective", req.Granularity)
	}

	resp, err := u.client.FetchAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}

	return &entity.Result{Request: req, Response: resp, RequestedGranularity: requested}, nil
}

// FetchBatch は同じ銘柄・時間足に対して複数の戦略を並行に実行します。
// 各戦略は独立したリトライ状態を持ち、1件の失敗が他の戦略を中断することはありません。
// 結果は strategies と同じ順序で返します。
func (u *AnalysisUsecase) FetchBatch(ctx context.Context, pair, timeframe string, strategies []string, count int) ([]entity.BatchItem, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: at least one strategy is required", domain.ErrTooManyStrategies)
	}
	if len(strategies) > MaxBatchStrategies {
		return nil, fmt.Errorf("%w: %d (max %d)", domain.ErrTooManyStrategies, len(strategies), MaxBatchStrategies)
	}
	// 入力検証は先にまとめて行う
	if _, _, err := u.BuildRequest(pair, timeframe, "", count); err != nil {
		return nil, err
	}

	items := make([]entity.BatchItem, len(strategies))
	var g errgroup.Group
	for i, s := range strategies {
		g.Go(func() error {
			res, err := u.FetchAnalysis(ctx, pair, timeframe, s, count)
			items[i] = entity.BatchItem{Strategy: s, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return items, nil
}
