package config

import (
	"fmt"
	"strings"
	"time"

	"vibedemo/internal/demo"
)

// ScriptConfig overrides parts of the variant's built-in script.
// Durations are Go duration strings; empty keeps the variant default.
type ScriptConfig struct {
	Trigger             string `yaml:"trigger"`
	ProvisioningDelay   string `yaml:"provisioning_delay"`
	AutoAdvanceDelay    string `yaml:"auto_advance_delay"`
	AssistantDelay      string `yaml:"assistant_delay"`
	ShareIndicatorDelay string `yaml:"share_indicator_delay"`
}

type delayField struct {
	name     string
	value    string
	dst      *time.Duration
	positive bool // zero is rejected too
}

func (s *ScriptConfig) delays(script *demo.Script) []delayField {
	return []delayField{
		{"script.provisioning_delay", s.ProvisioningDelay, &script.ProvisioningDelay, false},
		{"script.auto_advance_delay", s.AutoAdvanceDelay, &script.AutoAdvanceDelay, false},
		{"script.assistant_delay", s.AssistantDelay, &script.AssistantDelay, false},
		{"script.share_indicator_delay", s.ShareIndicatorDelay, &script.ShareIndicatorDelay, true},
	}
}

func (s *ScriptConfig) validate() []string {
	var problems []string
	var scratch demo.Script
	for _, f := range s.delays(&scratch) {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s %q is not a duration", f.name, f.value))
			continue
		}
		switch {
		case d < 0:
			problems = append(problems, fmt.Sprintf("%s %q is negative", f.name, f.value))
		case d == 0 && f.positive:
			problems = append(problems, fmt.Sprintf("%s %q must be greater than zero", f.name, f.value))
		}
	}
	return problems
}

// DemoScript builds the demo script for the configured variant with every
// override applied.
func (c *Config) DemoScript() (demo.Script, error) {
	script, err := demo.ScriptFor(demo.Variant(c.Variant))
	if err != nil {
		return demo.Script{}, err
	}

	if t := strings.TrimSpace(c.Script.Trigger); t != "" {
		script.Trigger = t
	}
	for _, f := range c.Script.delays(&script) {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			return demo.Script{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = d
	}
	if c.Share.BaseURL != "" {
		script.ShareBaseURL = c.Share.BaseURL
	}

	if err := script.Validate(); err != nil {
		return demo.Script{}, err
	}
	return script, nil
}
