package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetupWritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	want := filepath.Join(root, ".todoprobe", "logs", "todoprobe.log")

	L().Debug("schema.debug_line")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if L().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected a no-op logger after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 log lines, got %d", len(lines))
	}
	for _, line := range lines {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("expected JSON line, got %q: %v", line, err)
		}
		if _, ok := m["time"]; !ok {
			t.Fatalf("expected time key in %q", line)
		}
	}
	if !strings.Contains(string(b), "schema.debug_line") {
		t.Fatalf("expected debug line to be written")
	}
}

func TestLIsUsableBeforeSetup(t *testing.T) {
	L().Info("discarded")
}
