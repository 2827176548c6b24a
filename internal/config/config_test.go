package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/bugform/internal/api"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvServer, "")
	return dir
}

func writeRaw(t *testing.T, home, content string, perm os.FileMode) {
	t.Helper()
	cfgDir := filepath.Join(home, ".bugform")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(content), perm))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withHome(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	withHome(t)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		ServerURL:      "https://bugs.example.org",
		APIKey:         "bf_verylongkeystring12345",
		TimeoutSeconds: 3,
		RetryMax:       2,
		Theme:          "light",
		VimKeys:        true,
		LogPath:        "/tmp/bugform.log",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "", 0600)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "invalid: yaml: content:", 0600)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadServerURL(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "server_url: bugs.example.org\n", 0600)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_url")
}

func TestLoadConfigRejectsNegativeRetries(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "server_url: http://x\nretry_max: -1\n", 0600)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry_max")
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withHome(t)

	cfg := DefaultConfig()
	cfg.APIKey = "secret"
	require.NoError(t, cfg.Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")

	_, err = LoadOrDefault()
	assert.Error(t, err)
}

func TestServerEnvOverride(t *testing.T) {
	withHome(t)
	cfg := DefaultConfig()
	assert.Equal(t, api.DefaultBaseURL, cfg.Server())

	t.Setenv(EnvServer, "https://override.example.org")
	assert.Equal(t, "https://override.example.org", cfg.Server())
}

func TestResolvedLogPath(t *testing.T) {
	home := withHome(t)
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, ".bugform", "bugform.log"), cfg.ResolvedLogPath())

	cfg.LogPath = "~/logs/bf.log"
	assert.Equal(t, filepath.Join(home, "logs", "bf.log"), cfg.ResolvedLogPath())
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".bugform")
	assert.Contains(t, path, "config")
}

func TestDefaultConfigMatchesClientDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, api.DefaultBaseURL, cfg.ServerURL)
	assert.Equal(t, api.DefaultTimeout, cfg.Timeout())
	assert.Equal(t, api.DefaultTimeout, (&Config{}).Timeout())
}
