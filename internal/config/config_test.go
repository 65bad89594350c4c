package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFrom(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDGER_TEST_FROM_DOTENV=loaded\n"), 0600))
	t.Setenv("LEDGER_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("LEDGER_TEST_FROM_DOTENV"))

	loaded := loadEnvFrom(filepath.Join(dir, "missing.env"), envFile)

	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "loaded", os.Getenv("LEDGER_TEST_FROM_DOTENV"))
}

func TestLoadEnvFrom_ExistingVariablesWin(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDGER_TEST_PRESET=from-file\n"), 0600))
	t.Setenv("LEDGER_TEST_PRESET", "from-env")

	loadEnvFrom(envFile)

	assert.Equal(t, "from-env", os.Getenv("LEDGER_TEST_PRESET"))
}

func TestLoadEnvFrom_NoFile(t *testing.T) {
	assert.Empty(t, loadEnvFrom(filepath.Join(t.TempDir(), "nope")))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LEDGER_TEST_GETENV", "value")
	assert.Equal(t, "value", GetEnv("LEDGER_TEST_GETENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("LEDGER_TEST_GETENV_MISSING_X", "fallback"))
}
