package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable the service reads.
const EnvPrefix = "LIGHTBNB_"

// Property store backends.
const (
	PropertyStorePostgres = "postgres"
	PropertyStoreFile     = "file"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL     string        `koanf:"database_url" validate:"required"`
	Port            string        `koanf:"port" validate:"required,numeric"`
	LogLevel        string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogPretty       bool          `koanf:"log_pretty"`
	PropertyStore   string        `koanf:"property_store" validate:"oneof=postgres file"`
	PropertyFile    string        `koanf:"property_file" validate:"required_if=PropertyStore file"`
	RateLimitSearch string        `koanf:"rate_limit_search" validate:"required"`
	QueryTimeout    time.Duration `koanf:"query_timeout" validate:"gt=0"`

	SearchLimit RateLimitConfig `koanf:"-"`
}

func defaults() *Config {
	return &Config{
		Port:            "8080",
		LogLevel:        "info",
		PropertyStore:   PropertyStorePostgres,
		PropertyFile:    "data/properties.json",
		RateLimitSearch: "60/min",
		QueryTimeout:    5 * time.Second,
	}
}

// Load reads LIGHTBNB_* environment variables (and a .env file when present),
// applies defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.PropertyStore = strings.ToLower(strings.TrimSpace(cfg.PropertyStore))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rl, err := parseRateLimit(cfg.RateLimitSearch)
	if err != nil {
		return nil, fmt.Errorf("invalid %sRATE_LIMIT_SEARCH value: %w", EnvPrefix, err)
	}
	cfg.SearchLimit = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}
