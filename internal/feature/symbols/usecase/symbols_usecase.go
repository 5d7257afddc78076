// Package usecase は銘柄一覧とチャート設定のビジネスロジックを実装します。
package usecase

import (
	"fmt"

	"trading_backend/internal/feature/symbols/domain"
	"trading_backend/internal/feature/symbols/domain/entity"
	"trading_backend/internal/shared/instrument"
)

// LimitedTimeframesNotice は時間足を丸めたときに画面へ表示する文言です。
const LimitedTimeframesNotice = "This instrument only supports daily, weekly and monthly charts; the interval was changed to daily."

// SymbolsUsecase は銘柄ラベルの一覧とチャート設定の解決を提供します。
// 状態を持たないため、並行に呼び出しても安全です。
type SymbolsUsecase struct{}

// NewSymbolsUsecase はSymbolsUsecaseの新しいインスタンスを生成します。
func NewSymbolsUsecase() *SymbolsUsecase {
	return &SymbolsUsecase{}
}

// ListPairs はカテゴリごとの銘柄ラベルを表示順で返します。
// category が空でない場合はそのカテゴリのみを返します。
func (u *SymbolsUsecase) ListPairs(category string) ([]entity.PairGroup, error) {
	pairs := instrument.TradingPairs()

	if category != "" {
		ps, ok := pairs[instrument.Category(category)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
		}
		return []entity.PairGroup{{Category: category, Pairs: ps}}, nil
	}

	out := make([]entity.PairGroup, 0, len(instrument.Categories))
	for _, c := range instrument.Categories {
		out = append(out, entity.PairGroup{Category: string(c), Pairs: pairs[c]})
	}
	return out, nil
}

// ResolveChart は銘柄ラベルと画面の時間足からチャートウィジェットの設定を組み立てます。
// 日足・週足・月足のみの銘柄では、それ以外の時間足を日足に丸めます。
func (u *SymbolsUsecase) ResolveChart(label, timeframe string) entity.ChartConfig {
	ps := instrument.NormalizeForProvider(label)
	requested := instrument.ChartInterval(timeframe)
	effective, substituted := instrument.ClampTimeframe(requested, ps.LimitedTimeframes)

	cfg := entity.ChartConfig{
		Label:             label,
		ProviderSymbol:    ps.Symbol,
		Interval:          effective,
		RequestedInterval: requested,
		LimitedTimeframes: ps.LimitedTimeframes,
		IntervalAdjusted:  substituted,
		AllowSymbolChange: !ps.LimitedTimeframes,
		APIInstrument:     instrument.NormalizeForAPI(label),
	}
	if substituted {
		cfg.Notice = LimitedTimeframesNotice
	}
	return cfg
}
