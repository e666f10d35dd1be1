package config

import (
	"fmt"
	"sort"
	"strings"

	"vibedemo/internal/logging"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Enabled    bool            `yaml:"enabled"`              // Master toggle - false = no logging
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // json, console
	File       string          `yaml:"file"`                 // Log file path
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// Options converts the config into logging.Options.
func (c *LoggingConfig) Options() logging.Options {
	return logging.Options{
		Enabled:    c.Enabled,
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		Categories: c.Categories,
	}
}

func (c *LoggingConfig) validate() []string {
	var problems []string
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q (valid: debug, info, warn, error)", c.Level))
	}
	switch strings.ToLower(c.Format) {
	case "", "json", "console", "text":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q (valid: json, console)", c.Format))
	}
	if c.Enabled && c.File == "" {
		problems = append(problems, "logging.file is required when logging is enabled")
	}
	for _, name := range sortedKeys(c.Categories) {
		if !logging.IsCategory(name) {
			problems = append(problems, fmt.Sprintf("logging.categories has unknown category %q", name))
		}
	}
	return problems
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
