package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LLM_PROVIDER", "LLM_TIMEOUT", "SESSION_STORE", "SESSION_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "openai", cfg.LLM.Provider)
}

func TestLoadProviderKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"go duration", "90s", 90 * time.Second},
		{"bare seconds", "30", 30 * time.Second},
		{"garbage", "soon", time.Minute},
		{"empty", "", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestSMTPEnabled(t *testing.T) {
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Enabled())
	assert.True(t, SMTPConfig{Host: "smtp.example.com", Email: "a@b.c", NotifyTo: "ops@b.c"}.Enabled())
}
