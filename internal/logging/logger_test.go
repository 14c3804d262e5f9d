package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/starrating/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatalf("nop logger should not enable any level")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "starrating.log")
	logger, err := New(config.LogConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log = %q, want hello entry", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
