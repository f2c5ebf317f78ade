package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(3000), cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "digigrow_session", cfg.Session.CookieName)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.digigrow.agency/api")
	t.Setenv("SESSION_STORE", "postgres")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "api.digigrow.agency", cfg.API.BaseURL.Host)
	assert.Equal(t, "postgres", cfg.Session.Store)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store", "SESSION_STORE", "redis"},
		{"relative api url", "API_BASE_URL", "/api"},
		{"short csrf key", "SESSION_CSRF_KEY", "too-short"},
		{"zero timeout", "API_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
