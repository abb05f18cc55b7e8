package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
upstream:
  base_url: "http://localhost:9000/api"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, 15, cfg.Upstream.TimeoutSeconds)
		assert.Equal(t, 5, cfg.Resolver.Workers)
		assert.Equal(t, 1024, cfg.Resolver.CacheCapacity)
		assert.Equal(t, 10, cfg.Resolver.CacheTTLMinutes)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "0 */5 * * * *", cfg.Scheduler.SweepCaches)
	})

	t.Run("rejects short jwt secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
upstream:
  base_url: "http://localhost:9000/api"
jwt:
  secret: "too-short"
`))
		assert.ErrorContains(t, err, "at least 32 characters")
	})

	t.Run("rejects missing upstream base URL", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.ErrorContains(t, err, "upstream base URL")
	})

	t.Run("env overrides win", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("RESOLVER_WORKERS", "3")

		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, 3, cfg.Resolver.Workers)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
