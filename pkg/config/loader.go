package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads, expands, merges, and validates the configuration file.
// A missing file is not an error; the built-in defaults apply.
func Load(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_path", path)

	// A .env next to the config file supplies secrets (DB_PASSWORD, API
	// keys) to the process environment before any env-based lookup —
	// both the ${VAR} expansion below and database.LoadConfigFromEnv.
	// Existing variables are never overridden.
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err == nil {
		log.Info("Loaded environment file", "env_path", envPath)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("No configuration file, using defaults")
	case err != nil:
		return nil, NewLoadError(path, err)
	default:
		var user Config
		if err := yaml.Unmarshal(ExpandEnv(data), &user); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		// User values override built-in defaults.
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, err)
		}
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration loaded",
		"addr", cfg.Addr(),
		"data_root", cfg.Data.Root,
		"cors_origins", len(cfg.Security.CORS.Origins))
	return cfg, nil
}

// ExpandEnv expands ${VAR} and $VAR references in YAML content. Missing
// variables expand to empty strings; validation catches required fields
// left empty.
func ExpandEnv(data []byte) []byte {
	return []byte(os.ExpandEnv(string(data)))
}
