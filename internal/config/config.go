// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Package config loads service configuration with koanf, layered as
// defaults, then an optional YAML file, then environment variables.
// Precedence: ENV > file > defaults.
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

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/engine"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/linklab/config.yaml",
	"/etc/linklab/config.yml",
}

// ConfigPathEnvVar overrides the config file search entirely.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is the full service configuration tree.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Engine  engine.Config `koanf:"engine"`
	Store   StoreConfig   `koanf:"store"`
	API     APIConfig     `koanf:"api"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig mirrors logging.Config minus the writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StoreConfig controls user-data persistence.
type StoreConfig struct {
	// Path is the Badger directory for save/load. Empty disables
	// persistence at startup and shutdown.
	Path string `koanf:"path"`

	// SaveOnShutdown writes a snapshot during graceful shutdown.
	SaveOnShutdown bool `koanf:"save_on_shutdown"`

	// LoadOnStartup restores a snapshot before serving, if one exists.
	LoadOnStartup bool `koanf:"load_on_startup"`
}

// APIConfig controls HTTP-layer behavior.
type APIConfig struct {
	// SeedSampleData populates the demo dataset at startup.
	SeedSampleData bool `koanf:"seed_sample_data"`

	// CORSAllowedOrigins defaults to every origin, as the service is
	// expected to sit behind a reverse proxy.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimitRequests per RateLimitWindow per client IP.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Engine: engine.DefaultConfig(),
		Store: StoreConfig{
			Path:           "",
			SaveOnShutdown: true,
			LoadOnStartup:  true,
		},
		API: APIConfig{
			SeedSampleData:     false,
			CORSAllowedOrigins: []string{"*"},
			RateLimitRequests:  100,
			RateLimitWindow:    time.Minute,
		},
	}
}

// Load builds the configuration from all layers and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("LINKLAB_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field consistency after unmarshaling.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if c.API.RateLimitRequests <= 0 {
		return fmt.Errorf("rate limit requests must be positive, got %d", c.API.RateLimitRequests)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %v", c.API.RateLimitWindow)
	}
	if (c.Store.LoadOnStartup || c.Store.SaveOnShutdown) && c.Store.Path == "" {
		// Persistence silently off when no path is set; not an error.
		c.Store.LoadOnStartup = false
		c.Store.SaveOnShutdown = false
	}
	return c.Engine.Validate()
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings routes env names whose target sits deeper than one
// section, which the generic section_field split cannot express.
var envMappings = map[string]string{
	"engine_weights_collaborative": "engine.weights.collaborative",
	"engine_weights_content":       "engine.weights.content",
}

// envTransform maps LINKLAB_SERVER_PORT to server.port and so on. The
// first underscore separates the section; the rest of the name keeps its
// underscores (LINKLAB_ENGINE_MAX_RESULTS -> engine.max_results). Keys
// with nested targets are listed in envMappings.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, "LINKLAB_"))
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}
