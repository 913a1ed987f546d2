package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Everything the core
// needs is injected from here; no package reads ambient state on its own.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Suggest  SuggestConfig
	Catalog  CatalogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// UpstreamConfig locates the fund-data provider.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SuggestConfig tunes the search-as-you-type engine.
type SuggestConfig struct {
	QuietInterval time.Duration
	Limit         int
}

// CatalogConfig drives the year-rate catalog refresh job.
type CatalogConfig struct {
	CronSpec  string
	FundTypes []string
	PageSize  int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:9000/fund"),
			Timeout: getDuration("UPSTREAM_TIMEOUT_MS", 10*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fund_insight.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Suggest: SuggestConfig{
			QuietInterval: getDuration("SUGGEST_QUIET_MS", time.Second),
			Limit:         getInt("SUGGEST_LIMIT", 10),
		},
		Catalog: CatalogConfig{
			// Daily, before market commentary hours.
			CronSpec:  getEnv("CATALOG_CRON", "0 0 6 * * *"),
			FundTypes: getList("CATALOG_FUND_TYPES", []string{"混合型", "股票型", "债券型", "QDII"}),
			PageSize:  getInt("CATALOG_PAGE_SIZE", 50),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getInt gets an integer environment variable or returns a default value.
func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getDuration reads a millisecond count or returns a default value.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms <= 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}

// getList reads a comma-separated environment variable or returns a default.
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
