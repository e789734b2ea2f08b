package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIBaseURL  = "SDL_API_BASE_URL"
	EnvLanguage    = "SDL_LANGUAGE"
	EnvMetricsAddr = "SDL_METRICS_ADDR"
)

// DefaultEnvFile is read when LoadEnv gets no paths
const DefaultEnvFile = ".env"

// Env holds start-up overrides; empty fields leave settings untouched
type Env struct {
	APIBaseURL  string
	Language    string
	MetricsAddr string
}

// LoadEnv reads the given .env files (earlier files win) and then the process
// environment, which wins over any file. Missing files are skipped.
func LoadEnv(paths ...string) (Env, error) {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	values := make(map[string]string)
	for _, path := range paths {
		fileValues, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Env{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for key, value := range fileValues {
			if _, exists := values[key]; !exists {
				values[key] = value
			}
		}
	}

	lookup := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return values[key]
	}

	return Env{
		APIBaseURL:  lookup(EnvAPIBaseURL),
		Language:    lookup(EnvLanguage),
		MetricsAddr: lookup(EnvMetricsAddr),
	}, nil
}

// BaseURL returns the normalized base URL, falling back to the default
func (e Env) BaseURL() string {
	return NormalizeBaseURL(e.APIBaseURL)
}
