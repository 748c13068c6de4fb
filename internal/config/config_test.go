package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "LOCALE", "ANALYZER", "GENERATOR", "MAX_UPLOAD_MB", "LANGFUSE_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ko", cfg.Locale)
	assert.Equal(t, "stub", cfg.Analyzer)
	assert.Equal(t, "stub", cfg.Generator)
	assert.Equal(t, 32, cfg.MaxUploadMB)
	assert.False(t, cfg.LangfuseEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ANALYZER", "tags")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("LANGFUSE_ENABLED", "true")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "tags", cfg.Analyzer)
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes())
	assert.True(t, cfg.LangfuseEnabled)
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	assert.Equal(t, 32, Load().MaxUploadMB)
}
