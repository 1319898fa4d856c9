package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"sitebuilder-backend/internal/constants"
)

type Config struct {
	// Database
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string
	SQLitePath  string

	// Redis
	EnableCache bool
	RedisURL    string

	// JWT
	JWTSecret string

	// Server
	Port        string
	Environment string

	// CORS
	CORSOrigins []string

	// CSP
	FrameSources []string
	MediaSources []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int

	// Pages
	PageFetchTimeout time.Duration
	DraftTTL         time.Duration
	JobInterval      time.Duration

	// Logging
	LogLevel string
	LogFile  string

	// Site Meta
	SiteName    string
	SiteTagline string
	SiteURL     string
}

func New() *Config {
	c := &Config{
		// Database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "siteuser"),
		DBPassword: getEnv("DB_PASSWORD", "sitepassword"),
		DBName:     getEnv("DB_NAME", "sitedb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "./data/site.db"),

		// Redis
		EnableCache: getEnvAsBool("ENABLE_CACHE", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		// CSP
		FrameSources: splitList(getEnv("CSP_FRAME_SOURCES", "")),
		MediaSources: splitList(getEnv("CSP_MEDIA_SOURCES", "")),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		// Pages
		PageFetchTimeout: time.Duration(getEnvAsInt("PAGE_FETCH_TIMEOUT_MS", 3000)) * time.Millisecond,
		DraftTTL:         time.Duration(getEnvAsInt("DRAFT_TTL_HOURS", 24)) * time.Hour,
		JobInterval:      time.Duration(getEnvAsInt("JOB_INTERVAL_SECONDS", 60)) * time.Second,

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		LogFile:  getEnv("LOG_FILE", ""),

		// Site Meta
		SiteName:    getEnv("SITE_NAME", "Sitebuilder"),
		SiteTagline: getEnv("SITE_TAGLINE", "Pages composed from sections."),
		SiteURL:     getEnv("SITE_URL", "http://localhost:8080"),
	}

	if c.PageFetchTimeout <= 0 {
		c.PageFetchTimeout = constants.DefaultPageFetchTimeout
	}
	if c.DraftTTL <= 0 {
		c.DraftTTL = constants.DefaultDraftTTL
	}
	if c.JobInterval <= 0 {
		c.JobInterval = time.Minute
	}

	// Build DSN
	c.DatabaseURL = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) UsesSQLite() bool {
	return c.DBDriver == "sqlite"
}
