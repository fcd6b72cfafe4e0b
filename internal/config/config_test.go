package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LLM_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"COMPLETION_TIMEOUT", "MAX_FILE_SIZE", "SESSION_EXPIRATION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ProviderGemini, cfg.Completion.Provider)
	assert.Equal(t, 120*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, time.Hour, cfg.Session.Expiration)
	assert.Empty(t, cfg.APIKey())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("COMPLETION_TIMEOUT", "45")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, ProviderOpenAI, cfg.Completion.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, "gpt-4o", cfg.Model())
	assert.Equal(t, 45*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.False(t, cfg.IsDevelopment())
}

func TestGetEnvAsDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("COMPLETION_TIMEOUT", "soon")

	assert.Equal(t, 90*time.Second, getEnvAsDuration("COMPLETION_TIMEOUT", "90s"))
}
