// Package dto defines data transfer objects for the catalog HTTP API.
package dto

// StrategyItem represents a strategy in the API response.
type StrategyItem struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"`
	WinRate int    `json:"win_rate"`
	Risk    string `json:"risk"`
	Tier    string `json:"tier"`
}

// ModelItem represents an AI model in the API response.
type ModelItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     string `json:"credits"`
	Accuracy    int    `json:"accuracy"`
	Tier        string `json:"tier"`
}
