package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  host: 127.0.0.1
  port: 3000
  mode: debug
database:
  driver: sqlite
  path: /tmp/test.db
jwt:
  secret: test-secret
  expire_hours: 12
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
}

func TestEnvOverridesYAML(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "interest_calculations.db", cfg.Database.Path)
	assert.Equal(t, "logs", cfg.Logging.Dir)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "app",
		Password: "pw", DBName: "interest", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=app password=pw dbname=interest sslmode=disable",
		db.DSN())
}
