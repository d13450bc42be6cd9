//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
environment: development
server:
  port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
jwt_token:
  secret_key: "a-very-long-test-secret-key-0123456789"
  expiration: 2h
seed:
  admin:
    username: root
    email: root@example.com
    password: rootpass1
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	cfg, err := InitializeRestConfig(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.JwtToken.TokenLifetime())
	assert.Equal(t, "root", cfg.Seed.Admin.UserName)
	assert.False(t, cfg.Seed.DataOnStartup)

	// defaults
	assert.True(t, cfg.Password.RequireDigit)
	assert.False(t, cfg.Password.RequireUppercase)
	assert.Equal(t, 8, cfg.Password.RequiredLength)
	assert.Equal(t, LocalStorageType, cfg.Storage.Type)
	assert.Equal(t, MemoryCacheType, cfg.Cache.Type)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, LogFormatText, cfg.Logger.RecordFormat())
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestInitializeRestConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VIDEOSHARE_JWT_TOKEN_SECRET_KEY", "overridden-secret-key-0123456789")
	t.Setenv("VIDEOSHARE_SERVER_PORT", "7070")

	cfg, err := InitializeRestConfig(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "overridden-secret-key-0123456789", cfg.JwtToken.SecretKey)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestInitializeRestConfig_MissingSecretKey(t *testing.T) {
	content := `
database:
  type: sqlite
seed:
  admin:
    password: rootpass1
`
	_, err := InitializeRestConfig(writeTestConfig(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JwtTokenSettings")
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRestConfig_IsDevelopment(t *testing.T) {
	assert.True(t, (&RestConfig{Environment: "Development"}).IsDevelopment())
	assert.False(t, (&RestConfig{Environment: EnvironmentProduction}).IsDevelopment())
	assert.False(t, (&RestConfig{}).IsDevelopment())
}
