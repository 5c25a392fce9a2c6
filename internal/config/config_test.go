package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg := Load()

	require.Equal(t, "8080", cfg.AppPort)
	require.Contains(t, cfg.DatabaseURL, "qaforum")
	require.Equal(t, "test-secret", cfg.SessionSecret)
	require.Equal(t, 7*24*time.Hour, cfg.SessionLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://forum:forum@db:5432/forum?sslmode=disable")
	t.Setenv("SESSION_TTL_HOURS", "24")

	cfg := Load()

	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, "postgres://forum:forum@db:5432/forum?sslmode=disable", cfg.DatabaseURL)
	require.Equal(t, 24*time.Hour, cfg.SessionLifetime)
}

func TestLoad_IgnoresUnparsableTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg := Load()

	require.Equal(t, 7*24*time.Hour, cfg.SessionLifetime)
}
