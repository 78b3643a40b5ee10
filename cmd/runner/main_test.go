package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mshel/snakeduel/internal/game"
)

func TestRunRejectsInvalidGameConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "snakeduel.log")
	t.Setenv("SNAKEDUEL_LOG_FILE", logFile)
	t.Setenv("SNAKEDUEL_WIDTH", "710")

	err := run()
	if !errors.Is(err, game.ErrInvalidGrid) {
		t.Fatalf("expected invalid grid, got %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Invalid game config") {
		t.Fatalf("expected the failure in the log, got %q", data)
	}
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SNAKEDUEL_LOG_FILE", filepath.Join(t.TempDir(), "snakeduel.log"))
	t.Setenv("SNAKEDUEL_LOG_LEVEL", "loud")

	if err := run(); err == nil || !strings.Contains(err.Error(), "log level") {
		t.Fatalf("expected a log level error, got %v", err)
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger(runnerConfig{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closeLog()
	logger.Info("goes nowhere")
}
