package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topfive/backend/conf"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TOPFIVE_CONFIG", "LISTEN_ADDR", "PORT", "DEBUG",
		"SECRET_KEY", "ADMIN_PASSWORD_HASH", "MAX_SUBMISSIONS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := conf.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ListenAddr)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug, "debug must default off")
	assert.Equal(t, 1000, cfg.MaxSubmissions)
	assert.NotEmpty(t, cfg.SecretKey, "missing secret gets a random fallback")
	assert.Equal(t, "0.0.0.0:5000", cfg.Address())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("MAX_SUBMISSIONS", "10")

	cfg, err := conf.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, 10, cfg.MaxSubmissions)
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := conf.Load()
	assert.Error(t, err)
}

func TestLoadNonPositiveMaxSubmissions(t *testing.T) {
	for _, value := range []string{"0", "-5"} {
		clearEnv(t)
		t.Setenv("MAX_SUBMISSIONS", value)

		_, err := conf.Load()
		assert.Error(t, err, "MAX_SUBMISSIONS=%s must be rejected", value)
	}
}

func TestLoadTomlFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "topfive.toml")
	content := []byte("port = 9000\nlisten_addr = \"10.0.0.1\"\ndebug = true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("TOPFIVE_CONFIG", path)
	t.Setenv("PORT", "9001") // env wins over the file

	cfg, err := conf.Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:9001", cfg.Address())
	assert.True(t, cfg.Debug)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOPFIVE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := conf.Load()
	assert.Error(t, err)
}
