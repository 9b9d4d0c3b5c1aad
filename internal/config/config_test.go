package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "multilingo.db", c.DatabaseDSN)
	assert.Empty(t, c.RemoteEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 30*time.Second, c.SyncInterval)
	assert.Equal(t, time.Minute, c.SweepInterval)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "key-1")
	t.Setenv(EnvRemoteAddr, "https://api.example.com")
	t.Setenv(EnvS3Bucket, "recordings")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "key-1", c.GeminiAPIKey)
	assert.Equal(t, "https://api.example.com", c.RemoteEndpointAddr)
	assert.Equal(t, "recordings", c.S3.Bucket)
	// untouched by env
	assert.Equal(t, "multilingo.db", c.DatabaseDSN)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		check       func(t *testing.T, c *Config)
	}{
		{
			name: "overrides", args: []string{"cmd", "-d", "custom.db", "-r", "https://api.example.com", "-i", "10"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "custom.db", c.DatabaseDSN)
				assert.Equal(t, "https://api.example.com", c.RemoteEndpointAddr)
				assert.Equal(t, 10*time.Second, c.OnlineCheckInterval)
				assert.Equal(t, 30*time.Second, c.SyncInterval)
			},
		},
		{name: "bad interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			c := &Config{}
			c.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(c) })
				return
			}
			require.NotPanics(t, func() { parseFlags(c) })
			tt.check(t, c)
		})
	}
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "database_dsn": "json.db",
  "remote_endpoint_addr": "https://api.example.com",
  "online_check_interval": "5s",
  "sync_interval": "1m"
}`), 0o600))

	os.Args = []string{"cmd", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "json.db", c.DatabaseDSN)
	assert.Equal(t, "https://api.example.com", c.RemoteEndpointAddr)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, time.Minute, c.SyncInterval)
	// absent keys keep defaults
	assert.Equal(t, time.Minute, c.SweepInterval)
	assert.NotEmpty(t, c.ProbeURL)
}
