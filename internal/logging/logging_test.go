package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/aigua/internal/config"
)

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aigua.log")

	logger, closeFn, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("stage completed")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at info level, got %d: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["msg"] != "stage completed" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud", Format: "console"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewForTUI_DiscardsWithoutFile(t *testing.T) {
	logger, closeFn, err := NewForTUI(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if logger.Core().Enabled(-1) {
		t.Fatal("expected a no-op logger")
	}
}
