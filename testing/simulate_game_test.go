package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tatianab/dungeon-escape/internal/config"
	"github.com/tatianab/dungeon-escape/internal/logger"
)

func TestInitLogging_UsesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulate.log")
	closeLog, err := initLogging(&config.Config{LogLevel: "info", LogFile: path})
	if err != nil {
		t.Fatalf("initLogging failed: %v", err)
	}
	t.Cleanup(func() { logger.Log.SetOutput(os.Stderr) })

	logger.Log.Info("Session started.")
	if err := closeLog(); err != nil {
		t.Fatalf("Failed to close log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Session started.") {
		t.Errorf("Expected the entry in %s, got %q", path, data)
	}
}

func TestInitLogging_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "simulate.log")
	if _, err := initLogging(&config.Config{LogFile: path}); err == nil {
		t.Errorf("Expected an error for %s", path)
	}
}
