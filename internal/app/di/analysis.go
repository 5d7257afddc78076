// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"trading_backend/internal/config"
	"trading_backend/internal/feature/analysis/adapters/analysisapi"
	platformhttp "trading_backend/internal/platform/http"
)

// NewAnalysisClient creates a fully configured analysis API client.
// The HTTP client carries no overall timeout; each attempt is bounded by
// its own context deadline.
func NewAnalysisClient(cfg config.AnalysisConfig) *analysisapi.Client {
	c := analysisapi.NewClient(analysisapi.NewConfig(cfg), platformhttp.NewHTTPClient(platformhttp.ClientOptions{}))
	slog.Info("analysis client configured",
		"base_urls", cfg.BaseURLs, "max_retries", cfg.MaxRetries,
		"timeout", cfg.Timeout, "worst_case", c.WorstCaseDuration())
	return c
}
