package sntp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sntp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server = "de.pool.ntp.org"
timeout = 2048
log_level = "debug"
log_file = "/var/log/sntp.log"
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "de.pool.ntp.org", config.Server)
	assert.Equal(t, uint(2048), config.Timeout)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "/var/log/sntp.log", config.LogFile)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sntp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`server = ""`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerName, config.Server)
	assert.Equal(t, uint(ExchangeTimeout), config.Timeout)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sntp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`server = [`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
