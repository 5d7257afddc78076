package instrument

// majorForexPairs is the dashboard's forex list. The X-prefixed /USD entries
// are metals and are resolved through commoditySymbols first.
var majorForexPairs = []string{
	"EUR/USD", "USD/JPY", "GBP/USD", "AUD/USD", "USD/CAD",
	"USD/CHF", "NZD/USD", "EUR/GBP", "EUR/JPY", "GBP/JPY",
	"XAU/USD", "XAG/USD", "XPT/USD", "XPD/USD", "OIL/USD",
	"NATURALGAS/USD", "COPPER/USD", "PLATINUM/USD", "PALLADIUM/USD",
}

// cryptoSymbols maps crypto pairs to Binance USDT tickers.
var cryptoSymbols = map[string]string{
	"BTC/USD":   "BINANCE:BTCUSDT",
	"ETH/USD":   "BINANCE:ETHUSDT",
	"XRP/USD":   "BINANCE:XRPUSDT",
	"SOL/USD":   "BINANCE:SOLUSDT",
	"ADA/USD":   "BINANCE:ADAUSDT",
	"DOT/USD":   "BINANCE:DOTUSDT",
	"DOGE/USD":  "BINANCE:DOGEUSDT",
	"AVAX/USD":  "BINANCE:AVAXUSDT",
	"LINK/USD":  "BINANCE:LINKUSDT",
	"MATIC/USD": "BINANCE:MATICUSDT",
	"BNB/USD":   "BINANCE:BNBUSDT",
	"XLM/USD":   "BINANCE:XLMUSDT",
	"UNI/USD":   "BINANCE:UNIUSDT",
	"ATOM/USD":  "BINANCE:ATOMUSDT",
	"LTC/USD":   "BINANCE:LTCUSDT",
}

// cryptoOrder keeps TradingPairs output stable.
var cryptoOrder = []string{
	"BTC/USD", "ETH/USD", "XRP/USD", "SOL/USD", "ADA/USD",
	"DOT/USD", "DOGE/USD", "AVAX/USD", "LINK/USD", "MATIC/USD",
	"BNB/USD", "XLM/USD", "UNI/USD", "ATOM/USD", "LTC/USD",
}

// commoditySymbols maps metals and energy pairs to their chart symbols.
var commoditySymbols = map[string]string{
	"XAU/USD":        "TVC:GOLD",
	"XAG/USD":        "TVC:SILVER",
	"OIL/USD":        "TVC:USOIL",
	"NATURALGAS/USD": "NATGASUSD",
	"COPPER/USD":     "XCUUSD",
	"PLATINUM/USD":   "TVC:PLATINUM",
	"PALLADIUM/USD":  "TVC:PALLADIUM",
	"XPT/USD":        "TVC:PLATINUM",
	"XPD/USD":        "TVC:PALLADIUM",
}

var commodityOrder = []string{
	"XAU/USD", "XAG/USD", "OIL/USD", "NATURALGAS/USD", "COPPER/USD",
	"PLATINUM/USD", "PALLADIUM/USD", "XPT/USD", "XPD/USD",
}

// listing is a fixed chart code plus its timeframe restriction.
type listing struct {
	symbol  string
	limited bool
}

// indexSymbols covers global and regional indices. NSE/BSE feeds only serve
// D/W/M bars to embedded charts, so the Indian indices are restricted.
var indexSymbols = map[string]listing{
	"S&P 500":       {"SPX", false},
	"DOW":           {"DOW", false},
	"NASDAQ":        {"IXIC", false},
	"FTSE 100":      {"FTSE:UKX", false},
	"DAX":           {"GER30", false},
	"NIKKEI 225":    {"JPN225", false},
	"HANG SENG":     {"HSI", false},
	"ASX 200":       {"AS51", false},
	"CAC 40":        {"CAC40", false},
	"SENSEX":        {"BSE:SENSEX", true},
	"NIFTY 50":      {"NSE:NIFTY50", true},
	"NIFTY BANK":    {"NSE:BANKNIFTY", true},
	"NIFTY NEXT 50": {"NSE:JUNIORBEES", true},
}

var indexOrder = []string{
	"S&P 500", "DOW", "NASDAQ", "FTSE 100", "DAX",
	"NIKKEI 225", "HANG SENG", "ASX 200", "CAC 40",
	"SENSEX", "NIFTY 50", "NIFTY BANK", "NIFTY NEXT 50",
}

// stockSymbols is the single-stock list: NIFTY 50 heavyweights and US
// megacaps.
var stockSymbols = map[string]listing{
	"RELIANCE":   {"NSE:RELIANCE", true},
	"TCS":        {"NSE:TCS", true},
	"HDFC BANK":  {"NSE:HDFCBANK", true},
	"INFOSYS":    {"NSE:INFY", true},
	"ICICI BANK": {"NSE:ICICIBANK", true},
	"SBI":        {"NSE:SBIN", true},
	"ITC":        {"NSE:ITC", true},
	"AAPL":       {"NASDAQ:AAPL", false},
	"MSFT":       {"NASDAQ:MSFT", false},
	"NVDA":       {"NASDAQ:NVDA", false},
	"TSLA":       {"NASDAQ:TSLA", false},
	"AMZN":       {"NASDAQ:AMZN", false},
}

var stockOrder = []string{
	"RELIANCE", "TCS", "HDFC BANK", "INFOSYS", "ICICI BANK", "SBI", "ITC",
	"AAPL", "MSFT", "NVDA", "TSLA", "AMZN",
}

// apiInstruments holds the analysis backend codes that differ from the plain
// slash→underscore form (OANDA CFD naming).
var apiInstruments = map[string]string{
	"S&P 500":        "SPX500_USD",
	"DOW":            "US30_USD",
	"NASDAQ":         "NAS100_USD",
	"FTSE 100":       "UK100_GBP",
	"DAX":            "DE30_EUR",
	"NIKKEI 225":     "JP225_USD",
	"HANG SENG":      "HK33_HKD",
	"ASX 200":        "AU200_AUD",
	"CAC 40":         "FR40_EUR",
	"NIFTY 50":       "IN50_USD",
	"OIL/USD":        "WTICO_USD",
	"NATURALGAS/USD": "NATGAS_USD",
	"COPPER/USD":     "XCU_USD",
	"PLATINUM/USD":   "XPT_USD",
	"PALLADIUM/USD":  "XPD_USD",
}

// coarseTimeframes are the only widget intervals allowed for restricted
// instruments.
var coarseTimeframes = map[string]struct{}{
	"D": {},
	"W": {},
	"M": {},
}

// chartIntervals maps the dashboard timeframe buttons to widget intervals.
var chartIntervals = map[string]string{
	"1M":  "1",
	"5M":  "5",
	"15M": "15",
	"30M": "30",
	"1H":  "60",
	"4H":  "240",
	"8H":  "480",
	"1D":  "D",
	"1W":  "W",
	"1MO": "M",
}
