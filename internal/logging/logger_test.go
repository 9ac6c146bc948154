package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skilldrill.log")

	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	logger.Debug("response edited", zap.String("response", "7"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"response":"7"`) {
		t.Errorf("expected structured field in log, got %s", data)
	}
}

func TestNewDropsDebugWhenQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skilldrill.log")

	logger, err := New(path, false)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("info entry missing")
	}
}

func TestNewEmptyPath(t *testing.T) {
	logger, err := New("", false)
	if err != nil || logger == nil {
		t.Fatalf("expected nop logger, got %v, %v", logger, err)
	}
}
