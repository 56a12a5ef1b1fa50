package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Gemini  GeminiConfig
	YouTube YouTubeConfig
	Fetcher FetcherConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds generative-model settings.
type GeminiConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	TimeoutSecs     int     `mapstructure:"timeout_secs"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens"`
}

// YouTubeConfig holds video platform API settings.
type YouTubeConfig struct {
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	DailyQuota  int    `mapstructure:"daily_quota"`
}

// FetcherConfig holds page-fetch settings.
type FetcherConfig struct {
	TimeoutSecs  int   `mapstructure:"timeout_secs"`
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// Load reads configuration from environment variables with the FORKFUL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FORKFUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_secs", 60)
	v.SetDefault("gemini.temperature", 0.2)
	v.SetDefault("gemini.max_output_tokens", 8192)

	// YouTube defaults; daily_quota matches the platform's free unit budget.
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.timeout_secs", 30)
	v.SetDefault("youtube.daily_quota", 10000)

	// Fetcher defaults
	v.SetDefault("fetcher.timeout_secs", 30)
	v.SetDefault("fetcher.max_body_bytes", 5*1024*1024)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FORKFUL_SERVER_PORT",
		"server.read_timeout":      "FORKFUL_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FORKFUL_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FORKFUL_SERVER_ENVIRONMENT",
		"log.level":                "FORKFUL_LOG_LEVEL",
		"log.format":               "FORKFUL_LOG_FORMAT",
		"cors.allowed_origins":     "FORKFUL_CORS_ALLOWED_ORIGINS",
		"gemini.api_key":           "FORKFUL_GEMINI_API_KEY",
		"gemini.model":             "FORKFUL_GEMINI_MODEL",
		"gemini.timeout_secs":      "FORKFUL_GEMINI_TIMEOUT_SECS",
		"gemini.temperature":       "FORKFUL_GEMINI_TEMPERATURE",
		"gemini.max_output_tokens": "FORKFUL_GEMINI_MAX_OUTPUT_TOKENS",
		"youtube.api_key":          "FORKFUL_YOUTUBE_API_KEY",
		"youtube.timeout_secs":     "FORKFUL_YOUTUBE_TIMEOUT_SECS",
		"youtube.daily_quota":      "FORKFUL_YOUTUBE_DAILY_QUOTA",
		"fetcher.timeout_secs":     "FORKFUL_FETCHER_TIMEOUT_SECS",
		"fetcher.max_body_bytes":   "FORKFUL_FETCHER_MAX_BODY_BYTES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FORKFUL_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FORKFUL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Gemini = GeminiConfig{
		APIKey:          v.GetString("gemini.api_key"),
		Model:           v.GetString("gemini.model"),
		TimeoutSecs:     v.GetInt("gemini.timeout_secs"),
		Temperature:     v.GetFloat64("gemini.temperature"),
		MaxOutputTokens: v.GetInt("gemini.max_output_tokens"),
	}
	cfg.YouTube = YouTubeConfig{
		APIKey:      v.GetString("youtube.api_key"),
		TimeoutSecs: v.GetInt("youtube.timeout_secs"),
		DailyQuota:  v.GetInt("youtube.daily_quota"),
	}
	cfg.Fetcher = FetcherConfig{
		TimeoutSecs:  v.GetInt("fetcher.timeout_secs"),
		MaxBodyBytes: v.GetInt64("fetcher.max_body_bytes"),
	}

	if cfg.Fetcher.TimeoutSecs <= 0 {
		return nil, fmt.Errorf("fetcher.timeout_secs must be positive")
	}

	return cfg, nil
}
