package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "ENV", "LOG_LEVEL", "TIMEZONE", "REDIS_URL", "AUDIT_QUEUE_SIZE", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 100, cfg.AuditQueueSize)
	assert.Empty(t, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUDIT_QUEUE_SIZE", "16")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 16, cfg.AuditQueueSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{ServerPort: "8080", LogLevel: "info", Timezone: "UTC", AuditQueueSize: 10}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.ServerPort = "http" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"timezone", func(c *Config) { c.Timezone = "Nowhere/Land" }},
		{"queue size", func(c *Config) { c.AuditQueueSize = 0 }},
	}

	require.NoError(t, base().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestUnparsableQueueSizeFailsValidation(t *testing.T) {
	t.Setenv("AUDIT_QUEUE_SIZE", "lots")

	cfg := Load()
	assert.Equal(t, -1, cfg.AuditQueueSize)
	assert.Error(t, cfg.Validate())
}
