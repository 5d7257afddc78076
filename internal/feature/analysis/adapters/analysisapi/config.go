// Package analysisapi provides a client for the remote strategy analysis service.
package analysisapi

import (
	"time"

	"trading_backend/internal/config"
)

const (
	// DefaultPath is the analysis endpoint appended to every base URL.
	DefaultPath = "/analysis/strategy"
	// DefaultMaxRetries is the number of attempts per base URL.
	DefaultMaxRetries = 3
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultInitialBackoff is the wait before the second attempt on a URL.
	DefaultInitialBackoff = time.Second
	// DefaultMaxBackoff caps the doubling.
	DefaultMaxBackoff = 30 * time.Second
)

// Config holds configuration for the analysis API client.
type Config struct {
	BaseURLs       []string      // candidate base URLs, tried in order
	Path           string        // endpoint path (e.g., "/analysis/strategy")
	MaxRetries     int           // attempts per base URL
	Timeout        time.Duration // per-attempt timeout
	InitialBackoff time.Duration // 1s, 2s, 4s ... between attempts on one URL
	MaxBackoff     time.Duration
	UserAgent      string
	ForwardAuth    bool // send the caller's session token as a bearer token
}

// NewConfig builds the client configuration from the application config.
func NewConfig(c config.AnalysisConfig) Config {
	return Config{
		BaseURLs:    c.BaseURLs,
		MaxRetries:  c.MaxRetries,
		Timeout:     c.Timeout,
		UserAgent:   c.UserAgent,
		ForwardAuth: c.ForwardAuth,
	}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = DefaultInitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = DefaultMaxBackoff
	}
	return c
}

// WorstCaseDuration is the longest a single FetchAnalysis call can take when
// every attempt runs into its timeout:
//
//	len(BaseURLs) × (MaxRetries × Timeout + Σ backoff waits)
//
// Timeouts apply per attempt, so callers that need an overall deadline must
// set one on the context.
func (c Config) WorstCaseDuration() time.Duration {
	c = c.withDefaults()
	var waits time.Duration
	next := c.InitialBackoff
	for i := 1; i < c.MaxRetries; i++ {
		waits += min(next, c.MaxBackoff)
		next *= 2
	}
	perURL := time.Duration(c.MaxRetries)*c.Timeout + waits
	return time.Duration(len(c.BaseURLs)) * perURL
}
