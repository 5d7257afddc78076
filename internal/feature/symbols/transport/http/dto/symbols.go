// Package dto defines data transfer objects for the symbols HTTP API.
package dto

// PairGroupResponse is one category of the pair list.
type PairGroupResponse struct {
	Category string   `json:"category"`
	Pairs    []string `json:"pairs"`
}

// ChartConfigResponse is the widget configuration for one pair.
type ChartConfigResponse struct {
	Label             string `json:"label"`
	Symbol            string `json:"symbol"`
	Interval          string `json:"interval"`
	RequestedInterval string `json:"requested_interval"`
	LimitedTimeframes bool   `json:"limited_timeframes"`
	IntervalAdjusted  bool   `json:"interval_adjusted"`
	AllowSymbolChange bool   `json:"allow_symbol_change"`
	APIInstrument     string `json:"api_instrument"`
	Notice            string `json:"notice,omitempty"`
}
