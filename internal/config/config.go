// Package config loads the optional user configuration file. Environment
// variables always win over file values; the file just saves retyping.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences.
type Config struct {
	// Grade is the default grade band for routing: "1-2", "3-4", "5-6", "ESO".
	Grade string `yaml:"grade"`

	// Subject restricts routing to one subject when set:
	// "mates", "lengua", "ciencias", "historia", "geo".
	Subject string `yaml:"subject"`

	LLM LLMConfig `yaml:"llm"`
}

// LLMConfig holds per-provider overrides mirrored into the llm package's
// environment-driven configuration.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// Default returns an empty configuration (no restrictions, env-driven LLM).
func Default() *Config {
	return &Config{}
}

// Path resolves the config file location:
// 1. TUTORIN_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/tutorin/config.yaml
// 3. ~/.config/tutorin/config.yaml
func Path() (string, error) {
	if p := os.Getenv("TUTORIN_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tutorin", "config.yaml"), nil
}

// Load reads the config file if present. A missing file is not an error;
// it yields the default configuration.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
