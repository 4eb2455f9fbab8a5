package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEventEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	keys := []string{
		"GO_ENV", "SESSIONIZE_EVENT_ID", "SESSIONIZE_BASE_URL",
		"SESSIONIZE_TIMEOUT", "MCP_HTTP_ADDR", "CORS_ALLOWED_ORIGINS",
	}
	for _, k := range keys {
		t.Setenv(k, vars[k])
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setEventEnv(t, map[string]string{"GO_ENV": "production"})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Environment)
		assert.Empty(t, cfg.EventID)
		assert.Equal(t, "https://sessionize.com", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Empty(t, cfg.HTTPAddr)
		assert.Nil(t, cfg.CORSOrigins)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		setEventEnv(t, map[string]string{
			"GO_ENV":               "production",
			"SESSIONIZE_EVENT_ID":  "abc123xyz",
			"SESSIONIZE_BASE_URL":  "http://localhost:9090",
			"SESSIONIZE_TIMEOUT":   "5",
			"MCP_HTTP_ADDR":        ":8080",
			"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example/",
		})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "abc123xyz", cfg.EventID)
		assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, []string{"https://a.example", "https://b.example/"}, cfg.CORSOrigins)
	})

	t.Run("invalid timeout keeps default", func(t *testing.T) {
		setEventEnv(t, map[string]string{
			"GO_ENV":             "production",
			"SESSIONIZE_TIMEOUT": "not-a-number",
		})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})
}
