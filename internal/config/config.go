package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Config holds the client settings from ~/.items/config.yaml.
// Flags override whatever is read from the file.
type Config struct {
	Server  string `yaml:"server"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "10s"
	Theme   string `yaml:"theme"`   // classic | neon | mono
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Server:  "http://localhost:8080",
		Timeout: "10s",
		Theme:   "classic",
	}
}

// Dir is the per-user config directory (~/.items).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".items"), nil
}

// Path is the full path of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Unknown keys are ignored; missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads from the per-user path, writing a default file on first
// run so users have something to edit.
func LoadDefault() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(cfg, p); err != nil {
			// Not fatal; run with defaults.
			return cfg, nil
		}
		return cfg, nil
	}
	return Load(p)
}

// Save writes the config as YAML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RequestTimeout parses the configured timeout, falling back to 10s on
// anything unparseable.
func (c Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
