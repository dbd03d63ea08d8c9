package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PROMOTRACK_DB", "PROMOTRACK_ADDR", "PROMOTRACK_LOG_USE_CASES", "PROMOTRACK_GIN_MODE"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/home/faculty")

	assert.Equal(t, filepath.Join("/home/faculty", ".promotrack", "promotrack.db"), cfg.DBPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, "release", cfg.GinMode)

	assert.Equal(t, "promotrack.db", DefaultConfig("").DBPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROMOTRACK_DB", "/tmp/p.db")
	t.Setenv("PROMOTRACK_ADDR", "127.0.0.1:9090")
	t.Setenv("PROMOTRACK_LOG_USE_CASES", "true")
	t.Setenv("PROMOTRACK_GIN_MODE", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "debug", cfg.GinMode)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROMOTRACK_LOG_USE_CASES", "sometimes")
	t.Setenv("PROMOTRACK_GIN_MODE", "verbose")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROMOTRACK_ADDR", ":7000")
	// godotenv treats a variable set to "" as present.
	os.Unsetenv("PROMOTRACK_DB")
	t.Cleanup(func() { os.Unsetenv("PROMOTRACK_DB") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PROMOTRACK_DB=/data/faculty.db\nPROMOTRACK_ADDR=:6000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/faculty.db", cfg.DBPath)
	assert.Equal(t, ":7000", cfg.Addr, "existing variables win over the file")
}
