package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeWritesServiceField(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	path := filepath.Join(t.TempDir(), "server.log")
	cfg := DefaultConfig()
	cfg.Output = path
	cfg.Level = "not-a-level"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Logger.Debug("hidden")
	Logger.Info("quote served")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"service":"route-cost"`) {
		t.Errorf("log line missing service field: %s", out)
	}
	if !strings.Contains(out, "quote served") {
		t.Errorf("log missing info entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at default level: %s", out)
	}
}

func TestInitializeRejectsUnknownFormat(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	cfg := DefaultConfig()
	cfg.Format = "xml"
	if err := Initialize(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}
