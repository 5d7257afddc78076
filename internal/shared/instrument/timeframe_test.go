package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClampTimeframe は制限付き銘柄の時間足がD/W/Mに丸められることを検証します。
func TestClampTimeframe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requested   string
		limited     bool
		want        string
		substituted bool
	}{
		{"unrestricted keeps minutes", "15M", false, "15M", false},
		{"unrestricted keeps anything", "whatever", false, "whatever", false},
		{"restricted minutes fall back to daily", "15M", true, "D", true},
		{"restricted hourly falls back to daily", "60", true, "D", true},
		{"restricted weekly is allowed", "W", true, "W", false},
		{"restricted monthly is allowed", "M", true, "M", false},
		{"restricted daily is allowed", "D", true, "D", false},
		{"restricted lowercase weekly is uppercased", "w", true, "W", true},
		{"restricted empty falls back to daily", "", true, "D", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, substituted := ClampTimeframe(tt.requested, tt.limited)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.substituted, substituted)
		})
	}
}

// TestChartInterval はダッシュボードの時間足ボタンがウィジェットの間隔トークンに変換されることを検証します。
func TestChartInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1M", "1"},
		{"15M", "15"},
		{"1H", "60"},
		{"4h", "240"},
		{"8H", "480"},
		{"1D", "D"},
		{"1W", "W"},
		{"1MO", "M"},
		{"D", "D"},
		{"240", "240"},
		{"", "60"},
		{"bogus", "60"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ChartInterval(tt.in))
		})
	}
}

// TestTradingPairs はカテゴリ別の銘柄一覧から金属ペアが為替に混ざらないことを検証します。
func TestTradingPairs(t *testing.T) {
	t.Parallel()

	pairs := TradingPairs()

	assert.Len(t, pairs, len(Categories))
	assert.Contains(t, pairs[CategoryForex], "EUR/USD")
	assert.NotContains(t, pairs[CategoryForex], "XAU/USD")
	assert.NotContains(t, pairs[CategoryForex], "OIL/USD")
	assert.Equal(t, "BTC/USD", pairs[CategoryCrypto][0])
	assert.Contains(t, pairs[CategoryIndices], "NIFTY 50")
	assert.Contains(t, pairs[CategoryCommodities], "XAU/USD")
	assert.Contains(t, pairs[CategoryStocks], "RELIANCE")

	// 呼び出し元の変更がテーブルに影響しないこと
	pairs[CategoryCrypto][0] = "mutated"
	assert.Equal(t, "BTC/USD", TradingPairs()[CategoryCrypto][0])
}
