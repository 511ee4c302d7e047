package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds connection settings for the upstream planning service.
// Values resolve in three layers: built-in defaults, then an optional
// config file, then ITINERO_* environment variables.
type Config struct {
	Endpoint      string `yaml:"endpoint"`
	PlanTimeoutMs int    `yaml:"plan_timeout_ms"`
	ChatTimeoutMs int    `yaml:"chat_timeout_ms"`
	MaxRetries    int    `yaml:"max_retries"`
	LogCalls      bool   `yaml:"log_calls"`
}

// DefaultConfig returns a Config with sensible defaults. The full plan
// fan-out upstream is slow, so its timeout is much longer than chat's.
func DefaultConfig() Config {
	return Config{
		Endpoint:      "http://localhost:8000",
		PlanTimeoutMs: 120000,
		ChatTimeoutMs: 60000,
		MaxRetries:    1,
		LogCalls:      false,
	}
}

// LoadConfig resolves configuration from defaults, ~/.itinero/config.yaml
// (when present), and environment overrides, in that order.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("ITINERO_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".itinero", "config.yaml")
		}
	}
	if path != "" {
		if err := applyConfigFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ITINERO_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ITINERO_PLAN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PlanTimeoutMs = n
		}
	}
	if v := os.Getenv("ITINERO_CHAT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ChatTimeoutMs = n
		}
	}
	if v := os.Getenv("ITINERO_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ITINERO_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
}
