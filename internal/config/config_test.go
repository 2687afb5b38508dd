package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("STORAGE_KEY", "")
	t.Setenv("STATS_CRON", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "parkingSlots", cfg.StorageKey)
	assert.Equal(t, "@every 1m", cfg.StatsCron)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := Config{StorageKey: "parkingSlots"}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"memory", func(c *Config) { c.StorageBackend = BackendMemory }, false},
		{"file without path", func(c *Config) { c.StorageBackend = BackendFile }, true},
		{"postgres without url", func(c *Config) { c.StorageBackend = BackendPostgres }, true},
		{"postgres", func(c *Config) { c.StorageBackend = BackendPostgres; c.DatabaseURL = "postgres://x" }, false},
		{"redis without addr", func(c *Config) { c.StorageBackend = BackendRedis }, true},
		{"unknown", func(c *Config) { c.StorageBackend = "sqlite" }, true},
		{"empty key", func(c *Config) { c.StorageBackend = BackendMemory; c.StorageKey = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminEnabled(t *testing.T) {
	c := Config{JWTSecret: "s", AdminEmail: "a@b.c"}
	assert.False(t, c.AdminEnabled())
	c.AdminPasswordHash = "$2a$10$x"
	assert.True(t, c.AdminEnabled())
}
