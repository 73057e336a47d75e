package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "BODY_LIMIT_BYTES", "DASHBOARD_URL", "REPORT_AUTHOR",
		"LLM_PROVIDER", "LLM_MODEL", "OPENAI_API_KEY", "GEMINI_API_KEY", "GROQ_API_KEY", "DEEPSEEK_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1<<20, cfg.BodyLimitBytes)
	assert.Equal(t, "Marketing Insights", cfg.ReportAuthor)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("BODY_LIMIT_BYTES", "2048")
	t.Setenv("DASHBOARD_URL", "https://dash.example.com")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2048, cfg.BodyLimitBytes)
	assert.Equal(t, "https://dash.example.com", cfg.DashboardURL)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "g-key", cfg.GeminiKey)
}

func TestLoadConfig_InvalidBodyLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("BODY_LIMIT_BYTES", "lots")

	assert.Equal(t, 1<<20, LoadConfig().BodyLimitBytes)
}
