package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrAPIKeyMissing is returned by Validate when API_KEY is not set.
var ErrAPIKeyMissing = errors.New("API_KEY environment variable is required")

// DatabaseConfig holds PostgreSQL connection settings for the optional summary audit log.
// The audit log is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// GeminiConfig holds settings for the generative AI provider.
type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	UploadDir      string
	MaxUploadBytes int
	LogLevel       string
	Timezone       string
	SwaggerEnabled bool
	Gemini         GeminiConfig
	Database       DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "5000"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 16*1024*1024),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		Gemini: GeminiConfig{
			APIKey:    getEnv("API_KEY", ""),
			Model:     getEnv("GEMINI_MODEL", "gemini-2.5-flash-preview-09-2025"),
			MaxTokens: getEnvInt("GEMINI_MAX_TOKENS", 8192),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Validate checks settings the process cannot start without.
func (c *AppConfig) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EnsureUploadDir creates the upload directory if it does not exist yet.
func (c *AppConfig) EnsureUploadDir() error {
	if err := os.MkdirAll(c.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir %s: %w", c.UploadDir, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
