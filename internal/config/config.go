// Package config loads tracker settings from an optional YAML file, an
// optional .env file and SCORETRACKER_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "SCORETRACKER_"

// Storage backends for the chunked tier
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config struct to hold the configuration settings
type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	History HistoryConfig `yaml:"history" envPrefix:"HISTORY_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Metrics MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
}

// HistoryConfig holds history settings
type HistoryConfig struct {
	Limit int `yaml:"limit" env:"LIMIT"`
}

// StorageConfig holds settings for every storage tier
type StorageConfig struct {
	// Backend selects the chunked tier store: sqlite (default), redis or
	// memory, which keeps nothing once the process exits
	Backend string `yaml:"backend" env:"BACKEND"`

	KeyPrefix  string `yaml:"key_prefix" env:"KEY_PREFIX"`
	ChunkSize  int    `yaml:"chunk_size" env:"CHUNK_SIZE"`
	QuotaBytes int    `yaml:"quota_bytes" env:"QUOTA_BYTES"`

	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`

	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`

	// AutoSaveFile is written on every change when set; otherwise the user is asked
	AutoSaveFile string `yaml:"auto_save_file" env:"AUTO_SAVE_FILE"`

	// ExportDir receives dated export files
	ExportDir string `yaml:"export_dir" env:"EXPORT_DIR"`
}

// MetricsConfig holds the prometheus endpoint settings
type MetricsConfig struct {
	// Address serves /metrics during interactive play; empty disables it
	Address string `yaml:"address" env:"ADDRESS"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		LogLevel: "info",
		History: HistoryConfig{
			Limit: 50,
		},
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			KeyPrefix:  "game-score-tracker:",
			ChunkSize:  512 * 1024,
			QuotaBytes: 5 * 1024 * 1024,
			RedisAddr:  "localhost:6379",
			SQLitePath: "scoretracker.db",
			ExportDir:  ".",
		},
	}
}

// Load builds the configuration. A missing YAML or .env file is not an error.
func Load(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", c.History.Limit)
	}
	if c.Storage.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Storage.ChunkSize)
	}
	if c.Storage.QuotaBytes < 0 {
		return fmt.Errorf("quota cannot be negative, got %d", c.Storage.QuotaBytes)
	}
	if strings.TrimSpace(c.Storage.KeyPrefix) == "" {
		return errors.New("key prefix cannot be empty")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("redis backend needs an address")
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite backend needs a path")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
