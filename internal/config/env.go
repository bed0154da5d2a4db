package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TASKBOARD_"

// readDotEnv reads dir/.env without touching the process environment.
// A missing file yields no values.
func readDotEnv(dir string) (map[string]string, error) {
	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return values, nil
}

// envLookup prefers the process environment over dotenv values
func envLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if val := os.Getenv(key); val != "" {
			return val, true
		}
		val, ok := dotenv[key]
		return val, ok && val != ""
	}
}

// applyEnv overrides cfg with TASKBOARD_* values
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	fields := []struct {
		key string
		dst *string
	}{
		{"ACTIVE_TITLE", &cfg.Board.ActiveTitle},
		{"FINISHED_TITLE", &cfg.Board.FinishedTitle},
		{"FOCUS", &cfg.Board.Focus},
		{"DAY_UNIT", &cfg.Effort.Day},
		{"MONTH_UNIT", &cfg.Effort.Month},
		{"LOG_LEVEL", &cfg.Log.Level},
		{"LOG_ENCODING", &cfg.Log.Encoding},
		{"LOG_FILE", &cfg.Log.File},
	}
	for _, s := range fields {
		if val, ok := lookup(EnvPrefix + s.key); ok {
			*s.dst = val
		}
	}

	if val, ok := lookup(EnvPrefix + "MOUSE"); ok {
		mouse, err := strconv.ParseBool(val)
		if err != nil {
			return &domain.ConfigError{Field: "board.mouse", Value: val, Err: err}
		}
		cfg.Board.Mouse = &mouse
	}

	if val, ok := lookup(EnvPrefix + "TOAST_MS"); ok {
		ms, err := strconv.Atoi(val)
		if err != nil {
			return &domain.ConfigError{Field: "toast.durationMs", Value: val, Err: err}
		}
		cfg.Toast.DurationMs = ms
	}

	return nil
}
