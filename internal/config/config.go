// Package config loads pancasting settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pancasting/internal/errors"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendBolt   = "bbolt"
	BackendSQLite = "sqlite"
)

// Backends lists every supported storage backend
var Backends = []string{BackendMemory, BackendRedis, BackendBolt, BackendSQLite}

// Config holds all configuration for the application
type Config struct {
	Storage        Storage `envPrefix:"PANCAST_"`
	HistoryMaxSize int     `env:"PANCAST_HISTORY_MAX_SIZE" envDefault:"50"`
	DefaultEdition string  `env:"PANCAST_DEFAULT_EDITION"  envDefault:"5e"`
	LogLevel       string  `env:"PANCAST_LOG_LEVEL"        envDefault:"info"`
}

// Storage selects and configures the durable key-value backend
type Storage struct {
	Backend       string `env:"STORE_BACKEND"  envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
	BoltPath      string `env:"BOLT_PATH"      envDefault:"pancast.db"`
	SQLitePath    string `env:"SQLITE_PATH"    envDefault:"pancast.sqlite"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("PANCAST_STORE_BACKEND", c.Storage.Backend, Backends, vb)
	switch c.Storage.Backend {
	case BackendRedis:
		errors.ValidateRequired("PANCAST_REDIS_ADDR", c.Storage.RedisAddr, vb)
	case BackendBolt:
		errors.ValidateRequired("PANCAST_BOLT_PATH", c.Storage.BoltPath, vb)
	case BackendSQLite:
		errors.ValidateRequired("PANCAST_SQLITE_PATH", c.Storage.SQLitePath, vb)
	}
	errors.ValidateRange("PANCAST_HISTORY_MAX_SIZE", c.HistoryMaxSize, 1, 1000, vb)
	errors.ValidateEnum("PANCAST_DEFAULT_EDITION", c.DefaultEdition, []string{"3.5", "5e"}, vb)
	errors.ValidateEnum("PANCAST_LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
