package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.AMQPURL)
	assert.Equal(t, "sms-codes", cfg.SMSQueue)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env-host/db")
	t.Setenv("SMS_QUEUE", "env-queue")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env-host/db", cfg.DatabaseDSN)
	assert.Equal(t, "env-queue", cfg.SMSQueue)
	assert.Empty(t, cfg.AMQPURL, "unset variable must not override the default")
}

func TestParseJson_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"postgres://json-host/db"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"userdir", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "postgres://json-host/db", cfg.DatabaseDSN)
	assert.Equal(t, "sms-codes", cfg.SMSQueue, "fields absent from the file keep their defaults")
}
