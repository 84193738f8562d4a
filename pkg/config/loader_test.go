package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ursceal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8787", cfg.Addr())
	assert.Equal(t, "./data", cfg.Data.Root)
	assert.Equal(t, 2*time.Second, cfg.Horde.PollInterval.Std())
}

func TestLoad_UserOverridesMergeOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
data:
  root: /var/lib/ursceal
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr()) // host kept from defaults
	assert.Equal(t, "/var/lib/ursceal", cfg.Data.Root)
	assert.Equal(t, 300*time.Second, cfg.Horde.Timeout.Std())
}

func TestLoad_DotEnvFileNextToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ursceal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  root: ${URSCEAL_TEST_DOTENV_ROOT}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("URSCEAL_TEST_DOTENV_ROOT=/tmp/from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("URSCEAL_TEST_DOTENV_ROOT") })

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv", cfg.Data.Root)
}

func TestLoad_DotEnvDoesNotOverrideExisting(t *testing.T) {
	t.Setenv("URSCEAL_TEST_DOTENV_KEEP", "from-process")
	dir := t.TempDir()
	path := filepath.Join(dir, "ursceal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  root: ${URSCEAL_TEST_DOTENV_KEEP}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("URSCEAL_TEST_DOTENV_KEEP=from-dotenv\n"), 0o644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.Data.Root)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("URSCEAL_TEST_ROOT", "/tmp/from-env")
	path := writeConfig(t, `
data:
  root: ${URSCEAL_TEST_ROOT}
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", cfg.Data.Root)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [broken")
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"bad origin", "security:\n  cors:\n    origins: [\"not a url\"]\n"},
		{"bad generation budget", "generation:\n  default_max_context_tokens: 100\n"},
		{"horde timeout below interval", "horde:\n  poll_interval: 10s\n  timeout: 5s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeConfig(t, tt.yaml))
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestValidator_WildcardOriginAllowed(t *testing.T) {
	cfg := defaults()
	cfg.Security.CORS.Origins = []string{"*"}
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}
