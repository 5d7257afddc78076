// Package entity defines the domain models for the symbols feature.
package entity

// PairGroup is one tab of the dashboard's pair picker.
type PairGroup struct {
	Category string
	Pairs    []string
}

// ChartConfig is everything the chart widget needs to render a pair.
type ChartConfig struct {
	Label             string // label as selected in the UI
	ProviderSymbol    string // chart-provider symbol (e.g. "FX:EURUSD")
	Interval          string // widget interval actually used (e.g. "60", "D")
	RequestedInterval string // widget interval before clamping
	LimitedTimeframes bool
	IntervalAdjusted  bool
	AllowSymbolChange bool
	APIInstrument     string // analysis API instrument code (e.g. "EUR_USD")
	Notice            string // set when the interval was clamped
}
