package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "users.db", cfg.SQLitePath)
	require.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)

	// unset secret key means a fresh random one each start
	require.True(t, cfg.SecretGenerated)
	require.Len(t, cfg.SecretKey, 64)

	other, err := Load()
	require.NoError(t, err)
	require.NotEqual(t, cfg.SecretKey, other.SecretKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("SECRET_KEY", "pinned")
	t.Setenv("PORT", "9999")
	t.Setenv("SQLITE_PATH", "/tmp/app.db")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, "/tmp/app.db", cfg.SQLitePath)
	require.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	require.Equal(t, "pinned", cfg.SecretKey)
	require.False(t, cfg.SecretGenerated)
}
