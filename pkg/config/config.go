// Package config loads the optional commandstrike.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/strikelab/commandstrike/pkg/ollama"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "commandstrike.yaml"

// Config mirrors the YAML configuration file. Zero-valued fields fall back
// to the client defaults.
type Config struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	TimeoutSecs    int     `yaml:"timeout_secs"`
	PullGraceSecs  int     `yaml:"pull_grace_secs"`
	Verbose        bool    `yaml:"verbose"`
	AuthToken      string  `yaml:"auth_token"`
	AuthHeaderName string  `yaml:"auth_header"`
}

// Load reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// tokens can be kept in the environment rather than committed in the file.
// A missing file at the default path is not an error; it yields a zero
// Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are in range.
func (c Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("config: temperature %v out of range [0.0, 1.0]", c.Temperature)
	}

	if c.MaxTokens < 0 {
		return fmt.Errorf("config: max_tokens must not be negative")
	}

	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config: timeout_secs must not be negative")
	}

	if c.PullGraceSecs < 0 {
		return fmt.Errorf("config: pull_grace_secs must not be negative")
	}

	return nil
}

// ClientConfig converts the file configuration into an ollama.Config,
// leaving zero fields for the client defaults to fill.
func (c Config) ClientConfig() ollama.Config {
	return ollama.Config{
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Timeout:     time.Duration(c.TimeoutSecs) * time.Second,
		PullGrace:   time.Duration(c.PullGraceSecs) * time.Second,
	}
}
