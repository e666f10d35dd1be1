// Package config loads the vibedemo YAML configuration: which scripted
// variant to run, timing overrides, theme, share link base and logging.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"vibedemo/internal/demo"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = ".vibedemo/config.yaml"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all vibedemo configuration.
type Config struct {
	// Variant selects the scripted flow: classic or guided.
	Variant string `yaml:"variant"`

	// Theme is auto, light or dark. Auto asks the terminal.
	Theme string `yaml:"theme"`

	// Mouse enables clickable regions in the desktop.
	Mouse bool `yaml:"mouse"`

	Script  ScriptConfig  `yaml:"script"`
	Share   ShareConfig   `yaml:"share"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShareConfig configures the share link.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Variant: string(demo.VariantGuided),
		Theme:   ThemeAuto,
		Mouse:   true,
		Script: ScriptConfig{
			Trigger: "vibe",
		},
		Share: ShareConfig{
			BaseURL: demo.GuidedScript().ShareBaseURL,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "json",
			File:    ".vibedemo/logs/vibedemo.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VIBEDEMO_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("VIBEDEMO_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("VIBEDEMO_SHARE_URL"); v != "" {
		c.Share.BaseURL = v
	}
	if v := os.Getenv("VIBEDEMO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	// Debug mode turns logging on regardless of the file.
	switch strings.ToLower(os.Getenv("VIBEDEMO_DEBUG")) {
	case "1", "true", "yes", "on":
		c.Logging.Enabled = true
		c.Logging.Level = "debug"
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	switch demo.Variant(c.Variant) {
	case demo.VariantClassic, demo.VariantGuided:
	default:
		problems = append(problems, fmt.Sprintf("variant %q (valid: classic, guided)", c.Variant))
	}

	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		problems = append(problems, fmt.Sprintf("theme %q (valid: auto, light, dark)", c.Theme))
	}

	problems = append(problems, c.Script.validate()...)

	if u, err := url.Parse(c.Share.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("share.base_url %q is not an absolute URL", c.Share.BaseURL))
	}

	problems = append(problems, c.Logging.validate()...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
