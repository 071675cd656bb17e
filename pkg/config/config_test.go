package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", "./data/test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "./data/test.db?mode=rwc&cache=shared&timeout=5000", cfg.Database.DSN)
	assert.Equal(t, "./data/test.db", cfg.Database.Path)
	assert.NotEmpty(t, cfg.Server.Port)
}

func TestLoadPostgresDSN(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "kid")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "sounds")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=6543 user=kid password=secret dbname=sounds sslmode=require", cfg.Database.DSN)
	assert.Empty(t, cfg.Database.Path)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soundlearn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: "9000"
logging:
  level: warn
client:
  store_backend: sqlite
  sound_base_url: https://cdn.example.org
`), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Address())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "sqlite", cfg.Client.StoreBackend)
	assert.Equal(t, "https://cdn.example.org", cfg.Client.SoundBaseURL)
}

func TestLoadRejectsUnknownBackends(t *testing.T) {
	t.Setenv("DB_TYPE", "mongodb")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
