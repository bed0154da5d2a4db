package domain

import (
	"errors"
	"fmt"
)

// ErrInvalid marks values outside their allowed set
var ErrInvalid = errors.New("invalid")

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field string // Dotted JSON path, e.g. "log.level"
	Value string // Optional: offending value
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
