package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vibedemo/internal/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VIBEDEMO_VARIANT", "VIBEDEMO_THEME", "VIBEDEMO_SHARE_URL",
		"VIBEDEMO_LOG_LEVEL", "VIBEDEMO_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "guided", cfg.Variant)
	assert.Equal(t, ThemeAuto, cfg.Theme)
	assert.True(t, cfg.Mouse)
	assert.False(t, cfg.Logging.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Variant = "classic"
	cfg.Theme = ThemeDark
	cfg.Mouse = false
	cfg.Script.ProvisioningDelay = "250ms"
	cfg.Logging.Categories = map[string]bool{"input": false}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: classic\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Variant)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "vibe", cfg.Script.Trigger)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed yaml", "variant: [classic", false},
		{"unknown variant", "variant: deluxe", true},
		{"unknown theme", "theme: neon", true},
		{"bad delay", "script:\n  provisioning_delay: soon", true},
		{"negative delay", "script:\n  assistant_delay: -1s", true},
		{"zero share indicator", "script:\n  share_indicator_delay: 0s", true},
		{"unknown log category", "logging:\n  categories:\n    mouse: false", true},
		{"relative share url", "share:\n  base_url: /s", true},
		{"bad log level", "logging:\n  level: loud", true},
		{"bad log format", "logging:\n  format: xml", true},
		{"enabled without file", "logging:\n  enabled: true\n  file: \"\"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "x"
	cfg.Theme = "y"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), `variant "x"`)
	assert.Contains(t, err.Error(), `theme "y"`)
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestEnvOverrides(t *testing.T) {
	t.Run("each variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VIBEDEMO_VARIANT", "classic")
		t.Setenv("VIBEDEMO_THEME", "light")
		t.Setenv("VIBEDEMO_SHARE_URL", "https://demo.example.com")
		t.Setenv("VIBEDEMO_LOG_LEVEL", "warn")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "classic", cfg.Variant)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "https://demo.example.com", cfg.Share.BaseURL)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.False(t, cfg.Logging.Enabled)
	})

	t.Run("debug enables logging", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VIBEDEMO_LOG_LEVEL", "error")
		t.Setenv("VIBEDEMO_DEBUG", "TRUE")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.Enabled)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		clearEnv(t)
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("override beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VIBEDEMO_VARIANT", "classic")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("variant: guided\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "classic", cfg.Variant)
	})
}

// =============================================================================
// SCRIPT CONVERSION
// =============================================================================

func TestScriptDefaultsPerVariant(t *testing.T) {
	for _, variant := range []demo.Variant{demo.VariantClassic, demo.VariantGuided} {
		t.Run(string(variant), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Variant = string(variant)

			script, err := cfg.DemoScript()
			require.NoError(t, err)

			want, err := demo.ScriptFor(variant)
			require.NoError(t, err)
			assert.Equal(t, want, script)
		})
	}
}

func TestScriptOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Script = ScriptConfig{
		Trigger:             "  launch ",
		ProvisioningDelay:   "1.5s",
		AutoAdvanceDelay:    "0s",
		AssistantDelay:      "200ms",
		ShareIndicatorDelay: "",
	}
	cfg.Share.BaseURL = "https://demo.example.com"

	script, err := cfg.DemoScript()
	require.NoError(t, err)

	assert.Equal(t, "launch", script.Trigger)
	assert.Equal(t, 1500*time.Millisecond, script.ProvisioningDelay)
	assert.Zero(t, script.AutoAdvanceDelay)
	assert.Equal(t, 200*time.Millisecond, script.AssistantDelay)
	assert.Equal(t, 2*time.Second, script.ShareIndicatorDelay)
	assert.Equal(t, "https://demo.example.com", script.ShareBaseURL)
}

func TestScriptUnknownVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "deluxe"
	_, err := cfg.DemoScript()
	assert.ErrorIs(t, err, demo.ErrUnknownVariant)
}

// =============================================================================
// LOGGING
// =============================================================================

func TestLoggingCategories(t *testing.T) {
	lc := LoggingConfig{Enabled: true, File: "x.log", Categories: map[string]bool{"input": false}}
	assert.Empty(t, lc.validate())

	opts := lc.Options()
	assert.True(t, opts.Enabled)
	assert.Equal(t, lc.Categories, opts.Categories)

	lc.Categories["keyboard"] = true
	problems := lc.validate()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], `"keyboard"`)
}
