package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://api.bilibili.com/x/web-interface", cfg.Bilibili.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Bilibili.Timeout)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "video_tagger.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, "video_tagger.messages", cfg.RabbitMQ.QueueName)
	assert.Equal(t, ":8090", cfg.HTTP.Addr)
	assert.Equal(t, "amqp", cfg.Agent.Transport)
	assert.Equal(t, time.Second, cfg.Agent.MountInterval)
	assert.Equal(t, 30, cfg.Agent.MountAttempts)
	assert.Equal(t, time.Duration(0), cfg.Agent.SyncInterval)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TAGGER_TEST_DB_PASSWORD", "s3cret")
	t.Setenv("TAGGER_TEST_API", "http://api.local")

	cfg, err := Load(writeConfig(t, `
api:
  base_url: ${TAGGER_TEST_API}
  timeout: 5s
storage:
  driver: postgres
  database:
    host: db
    user: tagger
    password: ${TAGGER_TEST_DB_PASSWORD}
    dbname: tagger
agent:
  transport: ws
  sync_interval: 30s
`))
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "s3cret", cfg.Storage.Database.Password)
	assert.Equal(t, "host=db port=5432 user=tagger password=s3cret dbname=tagger sslmode=disable", cfg.Storage.Database.DSN())
	assert.Equal(t, "ws", cfg.Agent.Transport)
	assert.Equal(t, 30*time.Second, cfg.Agent.SyncInterval)
}

func TestLoad_MemoryIsOptIn(t *testing.T) {
	cfg, err := Load(writeConfig(t, "storage:\n  driver: memory\n  token: dev\n"))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "dev", cfg.Storage.Token)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "storage:\n  driver: mysql\n"},
		{"unknown transport", "agent:\n  transport: carrier-pigeon\n"},
		{"negative attempts", "agent:\n  mount_attempts: -1\n"},
		{"bad yaml", "log_level: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
