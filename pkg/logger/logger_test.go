package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	lg, closeFn, err := New("info", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	lg.Info("calculator application started")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "calculator application started") {
		t.Fatalf("expected startup entry in log file, got: %s", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	lg, closeFn, err := New("warn", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	lg.Info("suppressed")
	lg.Warn("kept")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "suppressed") {
		t.Fatalf("info entry must be filtered at warn level: %s", data)
	}
	if !strings.Contains(string(data), "kept") {
		t.Fatalf("warn entry must pass: %s", data)
	}
}

func TestNewBadPath(t *testing.T) {
	if _, _, err := New("info", filepath.Join(t.TempDir(), "absent", "calc.log")); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
