package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL      = "http://localhost:8000/api"
	DefaultAPITimeout      = 15 * time.Second
	DefaultGenerateTimeout = 3 * time.Minute
	DefaultFoodExpiryDays  = 5
)

// Config holds all configuration for the console and the stand-in API server
type Config struct {
	Environment Environment
	Client      ClientConfig
	Server      ServerConfig
}

// ClientConfig configures the API client and the page layer
type ClientConfig struct {
	APIBaseURL string
	// APITimeout bounds plain CRUD calls.
	APITimeout time.Duration
	// GenerateTimeout bounds recipe generation and invoice extraction,
	// both of which wait on an LLM behind the backend.
	GenerateTimeout time.Duration
	// CommitConcurrency > 1 switches invoice commits to a bounded batch.
	CommitConcurrency int
	PreferencesPath   string
	LogFile           string
}

// ServerConfig configures the stand-in API server
type ServerConfig struct {
	Host           string
	Port           string
	DBDriver       string
	DBDSN          string
	FoodExpiryDays int
	FixturesPath   string
}

// Addr returns the listen address of the stand-in server
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LoadConfig creates a new Config instance from the environment, after
// loading a .env file when one exists
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment: GetEnvironment(),
		Client: ClientConfig{
			APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
			APITimeout:        getEnvAsDuration("API_TIMEOUT", DefaultAPITimeout),
			GenerateTimeout:   getEnvAsDuration("GENERATE_TIMEOUT", DefaultGenerateTimeout),
			CommitConcurrency: getEnvAsInt("COMMIT_CONCURRENCY", 1),
			PreferencesPath:   getEnv("PREFERENCES_PATH", defaultPreferencesPath()),
			LogFile:           os.Getenv("LOG_FILE"),
		},
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "8000"),
			DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			DBDSN:          getEnv("DB_DSN", "recipeai.db"),
			FoodExpiryDays: getEnvAsInt("FOOD_EXPIRY_DAYS", DefaultFoodExpiryDays),
			FixturesPath:   os.Getenv("FIXTURES_PATH"),
		},
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func defaultPreferencesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recipeai-preferences.yaml"
	}
	return filepath.Join(home, ".recipeai", "preferences.yaml")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}

	log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
	return defaultValue
}
