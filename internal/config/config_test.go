// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Engine.MaxResults != 20 {
		t.Errorf("max results = %d, want 20", cfg.Engine.MaxResults)
	}
	// No store path means persistence flags are forced off.
	if cfg.Store.LoadOnStartup || cfg.Store.SaveOnShutdown {
		t.Errorf("persistence enabled without a path: %+v", cfg.Store)
	}
}

func TestLoadFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9090\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090 from file", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %s, want debug from file", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %s, want json default", cfg.Logging.Format)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LINKLAB_SERVER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
}

func TestLoadEnvSetsWeights(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LINKLAB_ENGINE_WEIGHTS_COLLABORATIVE", "0.8")
	t.Setenv("LINKLAB_ENGINE_WEIGHTS_CONTENT", "0.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.Weights.Collaborative != 0.8 {
		t.Errorf("collaborative = %v, want env override 0.8", cfg.Engine.Weights.Collaborative)
	}
	if cfg.Engine.Weights.Content != 0.2 {
		t.Errorf("content = %v, want env override 0.2", cfg.Engine.Weights.Content)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LINKLAB_SERVER_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LINKLAB_SERVER_PORT", "server.port"},
		{"LINKLAB_LOGGING_LEVEL", "logging.level"},
		{"LINKLAB_ENGINE_MAX_RESULTS", "engine.max_results"},
		{"LINKLAB_API_RATE_LIMIT_REQUESTS", "api.rate_limit_requests"},
		{"LINKLAB_ENGINE_WEIGHTS_COLLABORATIVE", "engine.weights.collaborative"},
		{"LINKLAB_ENGINE_WEIGHTS_CONTENT", "engine.weights.content"},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
