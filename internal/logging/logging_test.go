package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewRunLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewRunLogger(path, "info")
	if err != nil {
		t.Fatalf("NewRunLogger() error = %v", err)
	}
	logger.Info("run complete", zap.String("run_id", "test"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "run complete") {
		t.Fatalf("log file missing entry, got %q", string(data))
	}
	if !strings.Contains(string(data), `"run_id":"test"`) {
		t.Fatalf("log file missing field, got %q", string(data))
	}
}

func TestNewRunLogger_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewRunLogger(path, "warn")
	if err != nil {
		t.Fatalf("NewRunLogger() error = %v", err)
	}
	logger.Info("below threshold")
	logger.Warn("at threshold")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "below threshold") {
		t.Fatal("info entry written despite warn level")
	}
	if !strings.Contains(string(data), "at threshold") {
		t.Fatal("warn entry missing")
	}
}

func TestNewRunLogger_InvalidLevel(t *testing.T) {
	if _, err := NewRunLogger(filepath.Join(t.TempDir(), "run.log"), "loud"); err == nil {
		t.Fatal("NewRunLogger() accepted bogus level")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	logger, err := NewConsoleLogger("debug")
	if err != nil {
		t.Fatalf("NewConsoleLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("NewConsoleLogger() returned nil logger")
	}
	if _, err := NewConsoleLogger("screaming"); err == nil {
		t.Fatal("NewConsoleLogger() accepted bogus level")
	}
}
