// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Firestore FirestoreConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	Gemini    GeminiConfig
	Auth      AuthConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// FirestoreConfig holds the shared-document store configuration. An empty
// ProjectID selects the local SQLite store instead.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
	DocumentID      string
}

// SQLiteConfig holds the local fallback store configuration.
type SQLiteConfig struct {
	Path string
}

// RedisConfig holds Redis configuration for rate limiting.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GeminiConfig holds AI extractor configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AuthConfig holds the PIN-gate configuration.
type AuthConfig struct {
	JWTSecret    string
	TokenExpiry  time.Duration
	Users        []string
	UniversalPIN string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
			Collection:      getEnv("FIRESTORE_COLLECTION", "app-data"),
			DocumentID:      getEnv("FIRESTORE_DOCUMENT_ID", "shared-data-v1"),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "homeledger.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
			TokenExpiry:  getEnvAsDuration("JWT_EXPIRY", 30*24*time.Hour),
			Users:        getEnvAsList("LEDGER_USERS", "Ajmal,Irfan,Shereen"),
			UniversalPIN: getEnv("UNIVERSAL_PIN", "0000"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
