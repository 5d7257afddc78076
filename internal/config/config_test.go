package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(context.Background(), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, []string{"https://backend.axiontrust.com"}, cfg.Analysis.BaseURLs)
	assert.Equal(t, 3, cfg.Analysis.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Analysis.Timeout)
	assert.False(t, cfg.Analysis.ForwardAuth)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "@every 1h", cfg.Session.CleanupCron)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(context.Background(), map[string]string{
		"ANALYSIS_BASE_URLS":    "https://a.example.com,https://b.example.com",
		"ANALYSIS_MAX_RETRIES":  "5",
		"ANALYSIS_TIMEOUT":      "2s",
		"ANALYSIS_FORWARD_AUTH": "true",
		"DB_DRIVER":             "postgres",
		"DB_DSN":                "host=db user=app dbname=trading",
		"REDIS_HOST":            "cache",
		"REDIS_PORT":            "6380",
		"LOG_FORMAT":            "json",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Analysis.BaseURLs)
	assert.Equal(t, 5, cfg.Analysis.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Analysis.Timeout)
	assert.True(t, cfg.Analysis.ForwardAuth)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero retries", env: map[string]string{"ANALYSIS_MAX_RETRIES": "0"}},
		{name: "non-positive timeout", env: map[string]string{"ANALYSIS_TIMEOUT": "0s"}},
		{name: "postgres without dsn", env: map[string]string{"DB_DRIVER": "postgres"}},
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "oracle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadFrom(context.Background(), tt.env)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
