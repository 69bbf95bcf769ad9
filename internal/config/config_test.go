package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
database:
  user: "hub"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "UTC", cfg.EventsTimezone)
	assert.Equal(t, "hub", cfg.Database.User)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "purchase.completed", cfg.RabbitMQ.Queue)
	assert.Equal(t, time.Minute, cfg.Inventory.CollectInterval)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("EVENTS_TIMEZONE", "Europe/Berlin")
	t.Setenv("REDIS_ENABLED", "true")

	path := writeConfig(t, `
database:
  user: "hub"
  port: 5432
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("EVENTS_TIMEZONE", "Mars/Olympus_Mons")

	path := writeConfig(t, `
database:
  user: "hub"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events_timezone")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}
