package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// process start and immutable afterwards.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Source   SourceConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path    string
	DataDir string // raw API dump directory; empty disables dumps
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SourceConfig selects and configures the data source. UseMock switches the
// whole backend to the synthetic generator; the remaining fields only apply
// to the live bank source.
type SourceConfig struct {
	UseMock         bool
	MockSeed        int64
	Token           string
	EncryptionKey   string // base64 fernet key for the persisted token
	RefreshOnStart  bool
	RefreshSchedule string // cron expression; empty disables scheduled refresh
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	mockSeed, err := strconv.ParseInt(getEnv("MOCK_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_SEED: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path:    getEnv("DB_PATH", "./data/budget_planner.db"),
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Source: SourceConfig{
			UseMock:         getBoolEnv("IS_MOCK_DATA", false),
			MockSeed:        mockSeed,
			Token:           os.Getenv("UPBANK_TOKEN"),
			EncryptionKey:   os.Getenv("SETTINGS_ENCRYPTION_KEY"),
			RefreshOnStart:  getBoolEnv("REFRESH_ON_START", false),
			RefreshSchedule: os.Getenv("REFRESH_SCHEDULE"),
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

// getBoolEnv gets a boolean environment variable or returns a default value.
// Any value strconv.ParseBool rejects counts as unset.
func getBoolEnv(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
