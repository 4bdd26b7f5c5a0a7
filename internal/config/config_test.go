package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REMINDERS_CONFIG",
		"REMINDERS_READER_BIN",
		"REMINDERS_OSASCRIPT_BIN",
		"REMINDERS_TIMEOUT_SECONDS",
		"REMINDERS_TEST_MODE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OsascriptBin != "osascript" {
		t.Errorf("Expected osascript, got %q", cfg.OsascriptBin)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.TestMode {
		t.Error("Expected test mode off by default")
	}
	if cfg.ReaderBin == "" {
		t.Error("Expected reader binary path to be resolved")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "reader_bin: /opt/reminders/reader\nosascript_bin: /usr/bin/osascript\ntimeout_seconds: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REMINDERS_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ReaderBin != "/opt/reminders/reader" {
		t.Errorf("Expected reader from file, got %q", cfg.ReaderBin)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Timeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("reader_bin: /from/file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REMINDERS_CONFIG", path)
	t.Setenv("REMINDERS_READER_BIN", "/from/env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ReaderBin != "/from/env" {
		t.Errorf("Expected env to win, got %q", cfg.ReaderBin)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REMINDERS_TIMEOUT_SECONDS", "zero")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid timeout")
	}
}

func TestLoad_TestModeDisablesBackends(t *testing.T) {
	clearEnv(t)
	t.Setenv("REMINDERS_READER_BIN", "/real/reader")
	t.Setenv("REMINDERS_TEST_MODE", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.TestMode {
		t.Error("Expected test mode on")
	}
	if cfg.ReaderBin == "/real/reader" {
		t.Error("Expected reader path to be substituted in test mode")
	}
	if _, err := os.Stat(cfg.ReaderBin); err == nil {
		t.Errorf("Test-mode reader path should not exist: %s", cfg.ReaderBin)
	}
}
