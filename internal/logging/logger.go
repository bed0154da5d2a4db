// Package logging builds the application's zap logger. The terminal belongs
// to the TUI, so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riordanpawley/taskboard/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Discard is the log file value that disables logging
const Discard = "-"

// New builds a zap.Logger from cfg. The returned close func flushes and
// releases the log file; it is safe to call on a discarding logger.
func New(cfg config.LogConfig) (*zap.Logger, func() error, error) {
	if cfg.File == "" || cfg.File == Discard {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(encoder(cfg.Encoding), zapcore.Lock(f), level)
	logger := zap.New(core, zap.AddCaller())

	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

func encoder(encoding string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if encoding == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}
