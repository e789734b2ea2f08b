package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadEnv_FromFile(t *testing.T) {
	unsetEnv(t, EnvAPIBaseURL, EnvLanguage, EnvMetricsAddr)
	path := writeEnvFile(t, "SDL_API_BASE_URL=http://localhost:5000/\nSDL_LANGUAGE=ru\n")

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/", env.APIBaseURL)
	assert.Equal(t, "http://localhost:5000", env.BaseURL())
	assert.Equal(t, "ru", env.Language)
	assert.Empty(t, env.MetricsAddr)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	unsetEnv(t, EnvLanguage, EnvMetricsAddr)
	t.Setenv(EnvAPIBaseURL, "https://api.example.org")
	path := writeEnvFile(t, "SDL_API_BASE_URL=http://localhost:5000\nSDL_METRICS_ADDR=:9102\n")

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org", env.APIBaseURL)
	assert.Equal(t, ":9102", env.MetricsAddr)
}

func TestLoadEnv_EarlierFileWins(t *testing.T) {
	unsetEnv(t, EnvAPIBaseURL, EnvLanguage, EnvMetricsAddr)
	first := writeEnvFile(t, "SDL_LANGUAGE=pt\n")
	second := writeEnvFile(t, "SDL_LANGUAGE=en\nSDL_METRICS_ADDR=:9000\n")

	env, err := LoadEnv(first, second)
	require.NoError(t, err)

	assert.Equal(t, "pt", env.Language)
	assert.Equal(t, ":9000", env.MetricsAddr)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	unsetEnv(t, EnvAPIBaseURL, EnvLanguage, EnvMetricsAddr)

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Env{}, env)
	assert.Equal(t, DefaultAPIBaseURL, env.BaseURL())
}
