package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lk16/flippy-bot/internal/search"
)

const (
	defaultCacheTTL = time.Hour
	dotEnvFile      = ".env"
)

// ServerConfig holds all configuration values of the move server loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	RedisURL    string
	PostgresURL string
	Token       string
	Prefork     bool
	CacheTTL    time.Duration
	Bot         *BotConfig
}

// BotConfig holds the search settings.
type BotConfig struct {
	Search search.Options
}

// LoadDotEnv loads variables from a .env file in the working directory, if there is one.
// Variables that are already set are not overwritten.
func LoadDotEnv() {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return
	}

	if err := godotenv.Load(dotEnvFile); err != nil {
		slog.Error("Failed to load .env file", "error", err)
		os.Exit(1)
	}
}

// Init loads the .env file and then sets up logging, so LOG_LEVEL and LOG_FORMAT may come from .env.
func Init() {
	LoadDotEnv()
	SetLogLevel()
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("FLIPPY_BOT_SERVER_HOST"),
		ServerPort:  getEnvMust("FLIPPY_BOT_SERVER_PORT"),
		RedisURL:    getEnvMust("FLIPPY_REDIS_URL"),
		PostgresURL: os.Getenv("FLIPPY_POSTGRES_URL"),
		Token:       getEnvMust("FLIPPY_BOT_SERVER_TOKEN"),
		Prefork:     getEnvMustBool("FLIPPY_BOT_SERVER_PREFORK"),
		CacheTTL:    getEnvDuration("FLIPPY_BOT_CACHE_TTL", defaultCacheTTL),
		Bot:         LoadBotConfig(),
	}
}

// LoadBotConfig loads the search settings. Missing values fall back to search.DefaultOptions.
func LoadBotConfig() *BotConfig {
	cfg, err := ParseBotConfig(os.Getenv)
	if err != nil {
		slog.Error("Invalid bot configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// ParseBotConfig builds a BotConfig using lookup to read variables.
func ParseBotConfig(lookup func(string) string) (*BotConfig, error) {
	options := search.DefaultOptions()

	if value := lookup("FLIPPY_BOT_SEARCH_DEPTH"); value != "" {
		depth, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("FLIPPY_BOT_SEARCH_DEPTH: %w", err)
		}
		options.Depth = depth
	}

	if value := lookup("FLIPPY_BOT_HORIZON_EVAL"); value != "" {
		options.Horizon = search.Horizon(value)
	}

	if value := lookup("FLIPPY_BOT_ROOT_POLICY"); value != "" {
		options.RootPolicy = search.RootPolicy(value)
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &BotConfig{Search: options}, nil
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return duration
}
