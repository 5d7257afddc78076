// Package instrument normalizes human-facing instrument labels ("EUR/USD",
// "BTC/USD", "S&P 500") into chart-provider symbols and analysis API codes.
//
// Every function here is pure: the lookup tables are package-level and never
// mutated, so concurrent use needs no locking.
package instrument

import (
	"slices"
	"strings"
	"unicode"
)

const (
	// NamespaceSeparator separates a provider prefix from the ticker ("FX:EURUSD").
	NamespaceSeparator = ":"
	// ForexNamespace is the prefix used for slash-delimited pairs.
	ForexNamespace = "FX"
	// DefaultProviderSymbol is returned for blank labels.
	DefaultProviderSymbol = "FX:EURUSD"
	// DefaultTimeframe is the widget interval restricted instruments fall back to.
	DefaultTimeframe = "D"
)

// ProviderSymbol is the chart-provider form of an instrument label.
type ProviderSymbol struct {
	Symbol            string // e.g. "FX:EURUSD", "BINANCE:BTCUSDT", "SPX"
	LimitedTimeframes bool   // only D/W/M intervals are served for this symbol
}

// NormalizeForProvider resolves label to a chart-provider symbol.
// Rules are applied in order and the first match wins; unknown labels fall
// through to a generic transform, so the result is never empty.
func NormalizeForProvider(label string) ProviderSymbol {
	cleaned := clean(label)
	if cleaned == "" {
		return ProviderSymbol{Symbol: DefaultProviderSymbol}
	}

	// 1. already namespaced
	if strings.Contains(label, NamespaceSeparator) {
		return ProviderSymbol{Symbol: label}
	}

	// 2. crypto
	if s, ok := cryptoSymbols[label]; ok {
		return ProviderSymbol{Symbol: s}
	}

	// 3. commodities
	if s, ok := commoditySymbols[label]; ok {
		return ProviderSymbol{Symbol: s}
	}

	// 4. major forex, skipping metal-style XXX/USD pairs
	if slices.Contains(majorForexPairs, label) && !isMetalPair(label) {
		return ProviderSymbol{Symbol: forexSymbol(cleaned)}
	}

	// 5. indices
	if l, ok := indexSymbols[label]; ok {
		return ProviderSymbol{Symbol: l.symbol, LimitedTimeframes: l.limited}
	}

	// 6. single stocks
	if l, ok := stockSymbols[label]; ok {
		return ProviderSymbol{Symbol: l.symbol, LimitedTimeframes: l.limited}
	}

	// 7. fallback
	if strings.Contains(cleaned, "/") {
		return ProviderSymbol{Symbol: forexSymbol(cleaned)}
	}
	return ProviderSymbol{Symbol: cleaned}
}

// NormalizeForAPI returns the analysis backend's instrument code for label.
// The exchange table wins; otherwise the slash becomes an underscore
// ("eur/usd" -> "EUR_USD"). Existence is not checked.
func NormalizeForAPI(label string) string {
	if code, ok := apiInstruments[label]; ok {
		return code
	}
	if code, ok := apiInstruments[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return code
	}
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(label), "/", "_"))
}

// IsRestricted reports whether label only supports coarse timeframes.
func IsRestricted(label string) bool {
	return NormalizeForProvider(label).LimitedTimeframes
}

func forexSymbol(cleaned string) string {
	return ForexNamespace + NamespaceSeparator + strings.ReplaceAll(cleaned, "/", "")
}

func isMetalPair(label string) bool {
	return strings.HasPrefix(label, "X") && strings.Contains(label, "/USD")
}

// clean strips all whitespace and uppercases.
func clean(label string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, label))
}
