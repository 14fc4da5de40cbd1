package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = 5000
	DefaultMongoDBURI = "mongodb://localhost:27017/sunshare"
)

// DefaultAllowedOrigins are the local dev server and the deployed frontend.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://hult-26.vercel.app",
}

type DatabaseConfig struct {
	// URI selects the driver by scheme: mongodb:// or postgres://.
	URI            string
	ConnectTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string // "text" | "json"
}

type Config struct {
	Port           int
	Database       DatabaseConfig
	AllowedOrigins []string
	Log            LogConfig
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; variables already set in the environment win.
func Load(envPath ...string) (*Config, error) {
	if err := godotenv.Load(envPath...); err != nil && len(envPath) > 0 {
		return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
	}

	cfg := &Config{
		Port: getEnvAsInt("PORT", DefaultPort),
		Database: DatabaseConfig{
			URI:            getEnvAsString("MONGODB_URI", DefaultMongoDBURI),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
		Log: LogConfig{
			Level:  getEnvAsString("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnvAsString("LOG_FORMAT", "text")),
		},
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.Log.Format)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue, with a warning, when the variable
// is not an integer.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(strings.TrimSpace(valueStr))
	if err != nil || value <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty items and
// trailing slashes.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
