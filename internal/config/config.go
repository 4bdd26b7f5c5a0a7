// Package config resolves the runtime configuration for the reminders
// bridge. The Config is built once at startup and passed by reference;
// nothing reads it through globals after that.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout bounds every native backend invocation.
	DefaultTimeout = 30 * time.Second

	readerBinName = "reminders-reader"
)

// Config holds everything the native backends need to run.
type Config struct {
	// ReaderBin is the compiled reader executable. Resolved once here;
	// NativeReader never re-resolves it.
	ReaderBin string `yaml:"reader_bin"`

	// OsascriptBin is the system automation interpreter used for writes.
	OsascriptBin string `yaml:"osascript_bin"`

	// Timeout applies per backend invocation, not per server.
	Timeout time.Duration `yaml:"timeout"`

	// TestMode swaps the reader for a non-functional path so the
	// orchestration layer can be exercised without touching the OS store.
	TestMode bool `yaml:"test_mode"`
}

// Load builds a Config from an optional YAML file (REMINDERS_CONFIG),
// environment variables, and defaults, in increasing precedence.
func Load() (*Config, error) {
	cfg := &Config{
		OsascriptBin: "osascript",
		Timeout:      DefaultTimeout,
	}

	if path := os.Getenv("REMINDERS_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("REMINDERS_READER_BIN"); v != "" {
		cfg.ReaderBin = v
	}
	if v := os.Getenv("REMINDERS_OSASCRIPT_BIN"); v != "" {
		cfg.OsascriptBin = v
	}
	if v := os.Getenv("REMINDERS_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid REMINDERS_TIMEOUT_SECONDS: %q", v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("REMINDERS_TEST_MODE"); v == "1" || v == "true" {
		cfg.TestMode = true
	}

	if cfg.ReaderBin == "" {
		cfg.ReaderBin = defaultReaderBin()
	}

	if cfg.TestMode {
		// Point both backends at paths that cannot execute.
		cfg.ReaderBin = filepath.Join(os.TempDir(), "reminders-reader-disabled")
		cfg.OsascriptBin = filepath.Join(os.TempDir(), "osascript-disabled")
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var file struct {
		ReaderBin      string `yaml:"reader_bin"`
		OsascriptBin   string `yaml:"osascript_bin"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		TestMode       bool   `yaml:"test_mode"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.ReaderBin != "" {
		c.ReaderBin = file.ReaderBin
	}
	if file.OsascriptBin != "" {
		c.OsascriptBin = file.OsascriptBin
	}
	if file.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(file.TimeoutSeconds) * time.Second
	}
	if file.TestMode {
		c.TestMode = true
	}
	return nil
}

// defaultReaderBin looks for the compiled reader next to the server
// executable (bin/ layout first), falling back to PATH lookup.
func defaultReaderBin() string {
	exe, err := os.Executable()
	if err != nil {
		return readerBinName
	}
	exeDir := filepath.Dir(exe)
	candidates := []string{
		filepath.Join(exeDir, readerBinName),
		filepath.Join(filepath.Dir(exeDir), "bin", readerBinName),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return readerBinName
}
