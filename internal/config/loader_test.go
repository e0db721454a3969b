package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_ACCESS_SECRET", "a-secret")
	t.Setenv("AUTH_REFRESH_SECRET", "r-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Server.HTTPAddr)
	assert.Equal(t, 20*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "a-secret", cfg.Auth.AccessSecret)
}

func TestLoadRequiresSecrets(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadPortEnvOverride(t *testing.T) {
	t.Setenv("AUTH_ACCESS_SECRET", "a-secret")
	t.Setenv("AUTH_REFRESH_SECRET", "r-secret")
	t.Setenv("PORT", "8081")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddr)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	yaml := `
server:
  http_addr: ":5005"
auth:
  access_secret: file-access
  refresh_secret: file-refresh
  access_ttl: 5m
rate_limit:
  requests: 10
  window: 1m
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":5005", cfg.Server.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
}
