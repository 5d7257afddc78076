package usecase

// DefaultStrategy はマッピングに存在しない戦略名に使うAPIコードです。
const DefaultStrategy = "breakout"

// strategyCodes は画面表示名からAPIの戦略コードへの対応表です。
var strategyCodes = map[string]string{
	"Breakout Strategy":     "breakout",
	"ICT Concept":           "ict",
	"Advanced SMC":          "advanced_smc",
	"SMC Strategy":          "smc",
	"Fibonacci Retracement": "fibonacci",
	"Trend Following":       "trend_following",
	"Momentum":              "momentum",
	"Volatility Breakout":   "volatility_breakout",
	"Carry Trade":           "carry_trade",
	"Options Straddle":      "options_straddle",
}

// knownCodes はAPIコードをそのまま受け付けるための逆引き集合です。
var knownCodes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(strategyCodes))
	for _, code := range strategyCodes {
		m[code] = struct{}{}
	}
	return m
}()

// StrategyCode は表示名をAPIの戦略コードに変換します。
// APIコードが渡された場合はそのまま返し、未知の名前は DefaultStrategy にフォールバックします。
func StrategyCode(name string) string {
	if code, ok := strategyCodes[name]; ok {
		return code
	}
	if _, ok := knownCodes[name]; ok {
		return name
	}
	return DefaultStrategy
}
