package instrument

// Category groups pairs the way the dashboard's pair picker does.
type Category string

const (
	CategoryForex       Category = "forex"
	CategoryCrypto      Category = "crypto"
	CategoryIndices     Category = "indices"
	CategoryCommodities Category = "commodities"
	CategoryStocks      Category = "stocks"
)

// Categories lists the categories in display order.
var Categories = []Category{
	CategoryForex, CategoryCrypto, CategoryIndices, CategoryCommodities, CategoryStocks,
}

// TradingPairs returns the known labels per category. The returned map and
// slices are fresh copies.
func TradingPairs() map[Category][]string {
	forex := make([]string, 0, len(majorForexPairs))
	for _, p := range majorForexPairs {
		if _, ok := commoditySymbols[p]; ok || isMetalPair(p) {
			continue
		}
		forex = append(forex, p)
	}

	return map[Category][]string{
		CategoryForex:       forex,
		CategoryCrypto:      append([]string(nil), cryptoOrder...),
		CategoryIndices:     append([]string(nil), indexOrder...),
		CategoryCommodities: append([]string(nil), commodityOrder...),
		CategoryStocks:      append([]string(nil), stockOrder...),
	}
}
