package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// FileName is the config file looked up in the config directory
const FileName = ".taskboard.json"

// Config represents the full taskboard configuration
type Config struct {
	Board  BoardConfig        `json:"board" yaml:"board"`
	Effort domain.EffortUnits `json:"effort" yaml:"effort"`
	Toast  ToastConfig        `json:"toast" yaml:"toast"`
	Log    LogConfig          `json:"log" yaml:"log"`
}

// BoardConfig contains list and input settings
type BoardConfig struct {
	ActiveTitle   string `json:"activeTitle" yaml:"activeTitle"`
	FinishedTitle string `json:"finishedTitle" yaml:"finishedTitle"`
	Mouse         *bool  `json:"mouse,omitempty" yaml:"mouse,omitempty"`
	Focus         string `json:"focus" yaml:"focus"` // status of the list the cursor starts in
}

// MouseEnabled reports whether mouse drag and drop is turned on
func (b BoardConfig) MouseEnabled() bool {
	return b.Mouse == nil || *b.Mouse
}

// ToastConfig contains notification settings
type ToastConfig struct {
	DurationMs int `json:"durationMs" yaml:"durationMs"`
}

// Duration returns how long a toast stays on screen
func (t ToastConfig) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// LogConfig contains logging settings. File "-" discards logs.
type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
	File     string `json:"file" yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	mouse := true
	return &Config{
		Board: BoardConfig{
			ActiveTitle:   domain.StatusActive.Title(),
			FinishedTitle: domain.StatusFinished.Title(),
			Mouse:         &mouse,
			Focus:         domain.StatusActive.String(),
		},
		Effort: domain.DefaultEffortUnits(),
		Toast: ToastConfig{
			DurationMs: 3000,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
			File:     filepath.Join(os.TempDir(), "taskboard.log"),
		},
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. TASKBOARD_* environment variables
// 2. .env in dir
// 3. .taskboard.json in dir (with version migration support)
// 4. Defaults
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		parsed, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		cfg = MergeWithDefaults(parsed)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	dotenv, err := readDotEnv(dir)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, envLookup(dotenv)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Board.ActiveTitle == "" {
		cfg.Board.ActiveTitle = defaults.Board.ActiveTitle
	}
	if cfg.Board.FinishedTitle == "" {
		cfg.Board.FinishedTitle = defaults.Board.FinishedTitle
	}
	if cfg.Board.Mouse == nil {
		cfg.Board.Mouse = defaults.Board.Mouse
	}
	if cfg.Board.Focus == "" {
		cfg.Board.Focus = defaults.Board.Focus
	}

	if cfg.Effort.Day == "" {
		cfg.Effort.Day = defaults.Effort.Day
	}
	if cfg.Effort.Month == "" {
		cfg.Effort.Month = defaults.Effort.Month
	}

	if cfg.Toast.DurationMs == 0 {
		cfg.Toast.DurationMs = defaults.Toast.DurationMs
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = defaults.Log.Encoding
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return cfg
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := domain.ParseStatus(c.Board.Focus); err != nil {
		return &domain.ConfigError{Field: "board.focus", Value: c.Board.Focus, Err: err}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &domain.ConfigError{Field: "log.level", Value: c.Log.Level, Err: domain.ErrInvalid}
	}

	switch c.Log.Encoding {
	case "json", "console":
	default:
		return &domain.ConfigError{Field: "log.encoding", Value: c.Log.Encoding, Err: domain.ErrInvalid}
	}

	if c.Toast.DurationMs < 0 {
		return &domain.ConfigError{
			Field: "toast.durationMs",
			Value: fmt.Sprint(c.Toast.DurationMs),
			Err:   errors.New("must not be negative"),
		}
	}

	return nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
