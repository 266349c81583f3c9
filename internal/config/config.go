package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	Log         LogConfig
	CORS        CORSConfig
	Seed        SeedConfig
	WebSocket   WebSocketConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SeedConfig points at an optional YAML file replacing the built-in sample recipes.
type SeedConfig struct {
	RecipesFile string
}

type WebSocketConfig struct {
	Enabled bool
}

// IsDevelopment reports whether the app runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "5000"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("FRONTEND_URL", "http://localhost:5173"),
				"http://localhost:5000",
			},
		},
		Seed: SeedConfig{
			RecipesFile: getEnv("RECIPES_FILE", ""),
		},
		WebSocket: WebSocketConfig{
			Enabled: getEnvBool("WS_ENABLED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("ignoring invalid boolean env value", "key", key, "value", value)
		return defaultValue
	}
	return b
}
