// Package config loads the application configuration from the environment.
//
// A .env file in the working directory is read first (if present) so local
// development does not need exported variables; real environment variables
// always win over the file.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `env:", prefix=SERVER_"`
	Analysis  AnalysisConfig  `env:", prefix=ANALYSIS_"`
	DB        DBConfig        `env:", prefix=DB_"`
	Redis     RedisConfig     `env:", prefix=REDIS_"`
	Session   SessionConfig   `env:", prefix=SESSION_"`
	Catalog   CatalogConfig   `env:", prefix=CATALOG_"`
	RateLimit RateLimitConfig `env:", prefix=RATE_LIMIT_"`
	Log       LogConfig       `env:", prefix=LOG_"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `env:"ADDR, default=:8080"`
	CORSOrigins     []string      `env:"CORS_ORIGINS, default=http://localhost:5173,http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`
}

// AnalysisConfig holds settings for the remote analysis service client.
type AnalysisConfig struct {
	BaseURLs    []string      `env:"BASE_URLS, default=https://backend.axiontrust.com"`
	MaxRetries  int           `env:"MAX_RETRIES, default=3"`
	Timeout     time.Duration `env:"TIMEOUT, default=30s"`
	UserAgent   string        `env:"USER_AGENT, default=trading-dashboard/1.0"`
	ForwardAuth bool          `env:"FORWARD_AUTH, default=false"`
}

// DBConfig selects and configures the relational store.
type DBConfig struct {
	Driver     string `env:"DRIVER, default=sqlite"` // postgres or sqlite
	DSN        string `env:"DSN"`
	SQLitePath string `env:"SQLITE_PATH, default=trading.db"`
}

// RedisConfig holds Redis connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT, default=6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB, default=0"`
}

// SessionConfig holds session store settings.
type SessionConfig struct {
	TTL         time.Duration `env:"TTL, default=24h"`
	CleanupCron string        `env:"CLEANUP_CRON, default=@every 1h"`
}

// CatalogConfig holds catalog cache settings.
type CatalogConfig struct {
	CacheTTL time.Duration `env:"CACHE_TTL, default=1h"`
}

// RateLimitConfig configures the inbound per-client limiter.
// RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `env:"RPS, default=5"`
	Burst int     `env:"BURST, default=10"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"` // text or json
}

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Load reads .env (optional) and the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom reads configuration from the given map only. Used by tests.
func LoadFrom(ctx context.Context, env map[string]string) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	if len(c.Analysis.BaseURLs) == 0 {
		return fmt.Errorf("%w: ANALYSIS_BASE_URLS must not be empty", ErrInvalid)
	}
	if c.Analysis.MaxRetries < 1 {
		return fmt.Errorf("%w: ANALYSIS_MAX_RETRIES must be >= 1", ErrInvalid)
	}
	if c.Analysis.Timeout <= 0 {
		return fmt.Errorf("%w: ANALYSIS_TIMEOUT must be positive", ErrInvalid)
	}
	switch c.DB.Driver {
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("%w: DB_DSN is required for postgres", ErrInvalid)
		}
	case "sqlite":
	default:
		return fmt.Errorf("%w: unknown DB_DRIVER %q", ErrInvalid, c.DB.Driver)
	}
	return nil
}

// RedisAddr returns host:port, or "" when Redis is disabled.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
