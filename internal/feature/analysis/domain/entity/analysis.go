// Package entity defines the domain models for the analysis feature.
package entity

// Request is the normalized, API-ready form of a user's analysis selection.
type Request struct {
	Instrument  string // API instrument code (e.g. "EUR_USD")
	Granularity string // API granularity (e.g. "M15", "H1", "D1")
	Strategy    string // API strategy code (e.g. "breakout")
	Count       int    // number of candles requested
}

// Candle is one OHLCV bar returned by the analysis service.
type Candle struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// TechnicalAnalysis carries the levels the strategy computed.
// Field names follow the service's wire format.
type TechnicalAnalysis struct {
	SupportLevel       float64 `json:"Support_Level"`
	ResistanceLevel    float64 `json:"Resistance_Level"`
	VolumeConfirmation string  `json:"Volume_Confirmation"`
	BreakoutDirection  string  `json:"Breakout_Direction"`
}

// Verdict is the strategy's trading call.
type Verdict struct {
	Signal            string            `json:"signal"` // BUY, SELL or HOLD
	Confidence        float64           `json:"confidence"`
	Entry             float64           `json:"entry"`
	StopLoss          float64           `json:"stop_loss"`
	TakeProfit        float64           `json:"take_profit"`
	RiskRewardRatio   string            `json:"risk_reward_ratio"`
	Timeframe         string            `json:"timeframe"`
	TechnicalAnalysis TechnicalAnalysis `json:"technical_analysis"`
	Recommendation    string            `json:"recommendation"`
}

// Response is the analysis service payload. It is passed to the UI as
// received; nothing reshapes it.
type Response struct {
	Pair        string   `json:"pair"`
	Granularity string   `json:"granularity"`
	Candles     []Candle `json:"candles"`
	Analysis    Verdict  `json:"analysis"`
}

// Result pairs a response with the request that produced it.
type Result struct {
	Request  Request
	Response *Response

	// RequestedGranularity differs from Request.Granularity when the
	// instrument only supports coarse timeframes and the value was clamped.
	RequestedGranularity string
}

// GranularityAdjusted reports whether the granularity sent differs from the
// one the caller asked for.
func (r *Result) GranularityAdjusted() bool {
	return r.RequestedGranularity != "" && r.RequestedGranularity != r.Request.Granularity
}

// BatchItem is the outcome for one strategy of a multi-strategy request.
type BatchItem struct {
	Strategy string // display name as requested
	Result   *Result
	Err      error
}
