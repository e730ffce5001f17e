package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with minimal file", func(t *testing.T) {
		path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Mode)
		assert.Equal(t, "elementa", cfg.Database.DBName)
		assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
		assert.Equal(t, "elementa.app", cfg.JWT.Issuer)
		assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
		assert.Equal(t, 5, cfg.RateLimit.Burst)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
jwt:
  secret: test-secret
ratelimit:
  requests_per_minute: 30
  burst: 10
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Mode)
		assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
		assert.Equal(t, 10, cfg.RateLimit.Burst)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("DB_NAME", "elementa_test")
		t.Setenv("JWT_SECRET", "env-secret")

		path := writeConfigFile(t, "server:\n  port: \"9090\"\njwt:\n  secret: file-secret\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, "elementa_test", cfg.Database.DBName)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("missing file falls back to defaults and env", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
	})

	t.Run("missing JWT secret rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		path := writeConfigFile(t, "server:\n  port: \"8080\"\n")

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("bad expiration format rejected", func(t *testing.T) {
		path := writeConfigFile(t, "jwt:\n  secret: s\n  access_token_expiration: tomorrow\n")

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	assert.Equal(t,
		"postgres://postgres:pw@localhost:5432/elementa?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
