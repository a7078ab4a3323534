package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWithoutFile(t *testing.T) {
	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatalf("init without file: %v", err)
	}
	if Log == nil || Sugar == nil {
		t.Fatal("Log and Sugar should be set after init")
	}

	// Logging with no cores configured must not panic.
	Info("no-op message")
	Sync()
}

func TestDefaultBeforeInit(t *testing.T) {
	// The package-level logger is usable (nop) before Init is called.
	if Log == nil || Sugar == nil {
		t.Fatal("package logger should be non-nil before Init")
	}
}

func TestFileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "cube.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("init with file: %v", err)
	}
	defer Sync()

	Sugar.Infow("region picked", "region", "top-front-right")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "region picked") {
		t.Errorf("log file does not contain the written entry: %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"}, // unknown levels fall back to info
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
