package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_ENDPOINT", "https://example.test/prod/applications")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/prod/applications", cfg.StoreEndpoint)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.StoreTimeout)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 1200, cfg.DefaultViewportWidth)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.ExtractorEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_ENDPOINT", "http://localhost:9000/apps")
	t.Setenv("STORE_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.ExtractorEnabled())
}

func TestLoad_RequiresEndpoint(t *testing.T) {
	t.Setenv("STORE_ENDPOINT", "")

	_, err := Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		StoreEndpoint:        "https://example.test/apps",
		NotificationTTL:      time.Second,
		DefaultViewportWidth: 800,
		LogFormat:            "text",
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.StoreEndpoint = "example.test/apps"
	assert.Error(t, bad.Validate())

	bad = base
	bad.LogFormat = "xml"
	assert.Error(t, bad.Validate())

	bad = base
	bad.StoreTimeout = -time.Second
	assert.Error(t, bad.Validate())
}
