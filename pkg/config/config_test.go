package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY", "COOKIE_SECURE", "IMAGE_HOST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	require.Equal(t, 10*24*time.Hour, cfg.JWTRefreshExpiry)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, "firebase", cfg.ImageHost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("JWT_REFRESH_EXPIRY", "72h")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("IMAGE_HOST", "s3")

	cfg := Load()

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.JWTAccessExpiry)
	require.Equal(t, 72*time.Hour, cfg.JWTRefreshExpiry)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, "s3", cfg.ImageHost)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()

	require.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	require.True(t, cfg.CookieSecure)
}
