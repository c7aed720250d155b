package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.App.Env)
	require.True(t, cfg.App.IsDev())
	require.False(t, cfg.App.IsProd())
	require.Equal(t, "8080", cfg.App.Port)

	require.False(t, cfg.Redis.Enabled())
	require.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	require.Equal(t, "https://viacep.com.br/ws", cfg.Lookup.ViaCEPBaseURL)

	require.False(t, cfg.Advisor.Configured())
	require.Equal(t, "gemini-2.5-flash", cfg.Advisor.Model)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NEXUSSHOP_APP_ENV", "prod")
	t.Setenv("NEXUSSHOP_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("NEXUSSHOP_ADVISOR_API_KEY", "test-key")
	t.Setenv("NEXUSSHOP_LOOKUP_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.App.IsProd())
	require.True(t, cfg.Redis.Enabled())
	require.True(t, cfg.Advisor.Configured())
	require.Equal(t, 2*time.Second, cfg.Lookup.Timeout)
}
