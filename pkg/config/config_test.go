// ABOUTME: Tests for environment-driven configuration loading
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	assert.True(t, cfg.AutoHealResponses)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.HealerModel)
	assert.Equal(t, 2, cfg.MaxHealAttempts)
	assert.Equal(t, "strict", cfg.StructuredOutputMode)
	assert.False(t, cfg.StrictCapabilities)
	assert.Equal(t, time.Hour, cfg.CatalogTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("OPENROUTER_AUTO_HEAL_RESPONSES", "false")
	t.Setenv("OPENROUTER_HEALER_MODEL", "anthropic/claude-haiku")
	t.Setenv("OPENROUTER_MAX_HEAL_ATTEMPTS", "5")
	t.Setenv("OPENROUTER_STRUCTURED_OUTPUT_MODE", "gentle")
	t.Setenv("OPENROUTER_CATALOG_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.False(t, cfg.AutoHealResponses)
	assert.Equal(t, "anthropic/claude-haiku", cfg.HealerModel)
	assert.Equal(t, 5, cfg.MaxHealAttempts)
	assert.Equal(t, "gentle", cfg.StructuredOutputMode)
	assert.Equal(t, 30*time.Minute, cfg.CatalogTTL)
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	t.Setenv("OPENROUTER_STRUCTURED_OUTPUT_MODE", "lenient")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported structured output mode")
}

func TestLoadRejectsNegativeAttempts(t *testing.T) {
	t.Setenv("OPENROUTER_MAX_HEAL_ATTEMPTS", "-1")

	_, err := Load()
	require.Error(t, err)
}

func TestDefaultMatchesLoadDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}
