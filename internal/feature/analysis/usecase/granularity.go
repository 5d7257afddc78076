package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"trading_backend/internal/feature/analysis/domain"
)

const (
	GranularityDaily   = "D1"
	GranularityWeekly  = "W1"
	GranularityMonthly = "M"
)

var (
	// apiGranularity は既にAPI形式になっているトークン（M15, H4, D1, W1, M）です。
	apiGranularity = regexp.MustCompile(`^(?:([MH])([1-9][0-9]*)|D1|W1|M)$`)
	// uiTimeframe は数字列＋単位（15M, 4h, 1D, 1MO）または単位のみ（W, MO）です。
	uiTimeframe = regexp.MustCompile(`^([0-9]*)(MIN|MO|[MHDW])$`)
)

// FormatGranularity は画面の時間足をAPIのgranularityに変換します。
//
//   - 分・時間は数値を保持します（15M -> M15, 4H -> H4）
//   - 日・週・月は数値に関係なく D1, W1, M に固定します（APIが複数日足に未対応のため）
//   - 数字の後の M は分（画面の表記）、MO または単独の M は月です
func FormatGranularity(timeframe string) (string, error) {
	tf := strings.ToUpper(strings.TrimSpace(timeframe))
	if apiGranularity.MatchString(tf) {
		return tf, nil
	}

	m := uiTimeframe.FindStringSubmatch(tf)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeframe, timeframe)
	}
	digits, unit := m[1], m[2]

	switch unit {
	case "M", "MIN", "H":
		if digits == "" {
			if unit == "M" {
				return GranularityMonthly, nil
			}
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeframe, timeframe)
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeframe, timeframe)
		}
		if unit == "H" {
			return "H" + strconv.Itoa(n), nil
		}
		return "M" + strconv.Itoa(n), nil
	case "D":
		return GranularityDaily, nil
	case "W":
		return GranularityWeekly, nil
	default: // MO
		return GranularityMonthly, nil
	}
}

// isCoarse は制限付き銘柄で許可されるgranularityかを判定します。
func isCoarse(g string) bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}
