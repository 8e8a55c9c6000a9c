package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "MONGODB_URI", "MONGOOSE_URI", "MONGODB_DATABASE", "REDIS_URL",
		"RATE_LIMIT_PER_MINUTE", "REQUEST_TIMEOUT", "KNOWN_LANGUAGES", "DEFAULT_AUTHOR", "PUBLIC_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "cookbook", cfg.MongoDatabase)
	assert.Equal(t, 20, cfg.RateLimit)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "mock-user-id", cfg.DefaultAuthor)
	assert.Equal(t, []string{"en", "fr", "es", "de", "it", "pt"}, cfg.KnownLanguages)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGOOSE_URI", "mongodb://db:27017")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("KNOWN_LANGUAGES", "EN, fr ,,ja")
	t.Setenv("PUBLIC_BASE_URL", "https://cook.example/")
	t.Setenv("APP_ENV", "production")

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"en", "fr", "ja"}, cfg.KnownLanguages)
	assert.Equal(t, "https://cook.example", cfg.PublicBaseURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("REQUEST_TIMEOUT", "-1s")
	_, _, err = Load()
	assert.Error(t, err)
}
