// Package config provides configuration management for spotmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

// AppName is the directory name used under the XDG config home.
const AppName = "spotmd"

// DefaultConcurrency is the number of files converted in parallel by batch commands.
const DefaultConcurrency = 4

// Config holds the spotmd configuration.
type Config struct {
	ImagePrefix   string `yaml:"image_prefix,omitempty"`
	ImageBaseURL  string `yaml:"image_base_url,omitempty"`
	SpotlightsDir string `yaml:"spotlights_dir,omitempty"`
	Concurrency   int    `yaml:"concurrency,omitempty"`
	Fallback      bool   `yaml:"fallback,omitempty"`
	OutputFormat  string `yaml:"output_format,omitempty"`
}

// Default returns a configuration with the built-in image rewrite.
func Default() *Config {
	return &Config{
		ImagePrefix:  md.DefaultImagePrefix,
		ImageBaseURL: md.DefaultImageBaseURL,
		Concurrency:  DefaultConcurrency,
	}
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.ImageBaseURL != "" &&
		!strings.HasPrefix(c.ImageBaseURL, "https://") &&
		!strings.HasPrefix(c.ImageBaseURL, "http://") {
		return errors.New("image_base_url must be an http(s) URL")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	return nil
}

// ConvertOptions returns the markdown conversion options described by the config.
func (c *Config) ConvertOptions() md.ConvertOptions {
	return md.ConvertOptions{
		ImagePrefix:  c.ImagePrefix,
		ImageBaseURL: c.ImageBaseURL,
		Fallback:     c.Fallback,
	}
}

// EffectiveConcurrency returns the configured concurrency or the default.
func (c *Config) EffectiveConcurrency() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("SPOTMD_IMAGE_PREFIX"); v != "" {
		c.ImagePrefix = v
	}
	if v := os.Getenv("SPOTMD_IMAGE_BASE_URL"); v != "" {
		c.ImageBaseURL = v
	}
	if v := os.Getenv("SPOTMD_SPOTLIGHTS_DIR"); v != "" {
		c.SpotlightsDir = v
	}
	if v := os.Getenv("SPOTMD_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Concurrency = n
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// xdg reads XDG_CONFIG_HOME once at startup; honour later changes too.
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, AppName, "config.yml")
	}
	return filepath.Join(xdg.ConfigHome, AppName, "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path. Fields missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with defaults
		cfg = Default()
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
