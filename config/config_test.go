package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MCP_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.MCPEnabled)
	assert.Equal(t, 5, cfg.ShutdownTimeoutSeconds)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("LIST_EMPTY", " , ")
	assert.Equal(t, []string{"*"}, getEnvList("LIST_EMPTY", []string{"*"}))
	assert.Equal(t, []string{"x"}, getEnvList("LIST_UNSET_KEY_FOR_TEST", []string{"x"}))
}
