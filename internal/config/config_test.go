package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "config_*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
http_server:
  address: "localhost:9090"
  timeout: 30s
  idle_timeout: 90s
endpoints:
  auth_url: "https://auth.example.com"
  masters_url: "https://masters.example.com"
  timeout: 7s
redis_connection:
  address: "localhost:6380"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 5
  dial_timeout: 5s
  timeout: 10s
session_store:
  key_prefix: "test:session:"
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "localhost:9090", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "https://auth.example.com", cfg.AuthURL)
	assert.Equal(t, "https://masters.example.com", cfg.MastersURL)
	assert.Equal(t, 7*time.Second, cfg.Endpoints.Timeout)
	assert.Equal(t, "localhost:6380", cfg.Addr)
	assert.Equal(t, "redis_pass", cfg.Password)
	assert.Equal(t, "redis_user", cfg.User)
	assert.Equal(t, 1, cfg.DB)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 10*time.Second, cfg.RedisConnection.Timeout)
	assert.Equal(t, "test:session:", cfg.KeyPrefix)
}

func TestMustLoad_DefaultValues(t *testing.T) {
	configContent := `
env: test
endpoints:
  auth_url: "https://auth.example.com"
  masters_url: "https://masters.example.com"
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))

	cfg := MustLoad()

	assert.Equal(t, "localhost:8080", cfg.AddressHTTP)
	assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Endpoints.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Addr)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "storefront:session:", cfg.KeyPrefix)
}

func TestConfig_StringContainsMainSettings(t *testing.T) {
	configContent := `
env: test
endpoints:
  auth_url: "https://auth.example.com"
  masters_url: "https://masters.example.com"
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))

	s := MustLoad().String()

	assert.Contains(t, s, "Env: test")
	assert.Contains(t, s, "https://auth.example.com")
	assert.Contains(t, s, "https://masters.example.com")
}
