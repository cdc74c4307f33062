// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package config loads layered configuration with Koanf v2:
// built-in defaults, then an optional YAML file, then environment
// variables. Precedence: ENV > file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/foodiebot/config.yaml",
	"/etc/foodiebot/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig selects and tunes the product store backend.
type DatabaseConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string `koanf:"driver"`

	// Path is the SQLite database file; ignored for the memory driver.
	Path string `koanf:"path"`

	// Seed loads the built-in product catalog on startup when the store
	// is empty.
	Seed bool `koanf:"seed"`
}

// SentimentConfig controls the tiered sentiment analyzer.
type SentimentConfig struct {
	// AdvancedEnabled wires the lexicon-based polarity scorer as the
	// first tier. Disabled, analysis starts at the rule tier.
	AdvancedEnabled bool `koanf:"advanced_enabled"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// DefaultLimit is the recommendation count when a request omits one.
	DefaultLimit int `koanf:"default_limit"`

	// BudgetCeiling bounds the budget generator when no budget was
	// stated.
	BudgetCeiling float64 `koanf:"budget_ceiling"`

	// Tier thresholds for the interest bands.
	HotThreshold     float64 `koanf:"hot_threshold"`
	WarmThreshold    float64 `koanf:"warm_threshold"`
	CuriousThreshold float64 `koanf:"curious_threshold"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "./data/foodiebot.db",
			Seed:   true,
		},
		Sentiment: SentimentConfig{
			AdvancedEnabled: true,
		},
		Recommend: RecommendConfig{
			DefaultLimit:     5,
			BudgetCeiling:    50,
			HotThreshold:     80,
			WarmThreshold:    60,
			CuriousThreshold: 40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SERVER_PORT -> server.port, DATABASE_PATH -> database.path, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or empty.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// knownPrefixes limits env mapping to variables this application owns, so
// unrelated process environment never leaks into the config tree.
var knownPrefixes = []string{"SERVER_", "DATABASE_", "SENTIMENT_", "RECOMMEND_", "LOGGING_"}

// envTransformFunc maps SERVER_READ_TIMEOUT to server.read_timeout and
// drops variables outside the known sections.
func envTransformFunc(key string) string {
	matched := false
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(key, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		return ""
	}

	key = strings.ToLower(key)
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks cross-field consistency the type system can't.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path required for sqlite driver")
		}
	case "memory":
	default:
		return fmt.Errorf("database.driver %q unsupported (sqlite, memory)", c.Database.Driver)
	}

	if c.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive")
	}
	if c.Recommend.BudgetCeiling <= 0 {
		return fmt.Errorf("recommend.budget_ceiling must be positive")
	}
	if !(c.Recommend.HotThreshold > c.Recommend.WarmThreshold &&
		c.Recommend.WarmThreshold > c.Recommend.CuriousThreshold) {
		return fmt.Errorf("recommend tier thresholds must be strictly descending")
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q unsupported (json, console)", c.Logging.Format)
	}

	return nil
}
