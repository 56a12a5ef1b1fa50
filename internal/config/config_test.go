package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 60, cfg.Gemini.TimeoutSecs)
	assert.InDelta(t, 0.2, cfg.Gemini.Temperature, 1e-9)
	assert.Equal(t, 8192, cfg.Gemini.MaxOutputTokens)

	assert.Equal(t, 10000, cfg.YouTube.DailyQuota)
	assert.Equal(t, 30, cfg.Fetcher.TimeoutSecs)
	assert.Equal(t, int64(5*1024*1024), cfg.Fetcher.MaxBodyBytes)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FORKFUL_SERVER_PORT", ":9999")
	t.Setenv("FORKFUL_GEMINI_API_KEY", "secret-key")
	t.Setenv("FORKFUL_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("FORKFUL_YOUTUBE_DAILY_QUOTA", "500")
	t.Setenv("FORKFUL_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "secret-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 500, cfg.YouTube.DailyQuota)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"},
		cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("FORKFUL_SERVER_PORT", ":6060")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Port)
}

func TestLoad_InvalidFetcherTimeout(t *testing.T) {
	t.Setenv("FORKFUL_FETCHER_TIMEOUT_SECS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
