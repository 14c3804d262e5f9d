// Package logging builds the zap logger used by the entry point. The terminal
// belongs to the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/starrating/internal/config"
)

// New returns a JSON file logger, or a no-op logger when cfg.File is empty.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", s, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
