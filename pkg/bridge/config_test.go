package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/bridge/pkg/errors"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Validation.Mode != ValidationPanic {
		t.Errorf("default mode = %q, want panic", cfg.Validation.Mode)
	}
	if cfg.Validation.TrackLeaks || cfg.Errors.Verbose {
		t.Error("defaults should leave diagnostics off")
	}
}

func TestLoadOptionalParsesYaml(t *testing.T) {
	dir := t.TempDir()
	data := []byte("validation:\n  mode: report\n  track_leaks: true\nerrors:\n  verbose: true\n")
	if err := os.WriteFile(filepath.Join(dir, "bridge.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Validation.Mode != ValidationReport {
		t.Errorf("mode = %q, want report", cfg.Validation.Mode)
	}
	if !cfg.Validation.TrackLeaks {
		t.Error("track_leaks not parsed")
	}
	if !cfg.Errors.Verbose {
		t.Error("verbose not parsed")
	}
}

func TestLoadOptionalRejectsMalformedYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bridge.yaml"), []byte("validation: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected a parse error")
	}
}

func TestConfigureRejectsUnknownMode(t *testing.T) {
	err := Configure(Config{Validation: ValidationConfig{Mode: "abort"}})
	if err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestConfigurePreservesHostHandler(t *testing.T) {
	old := config
	t.Cleanup(func() {
		config = old
		errors.SetHandler(nil)
	})

	host := &captureHandler{}
	errors.SetHandler(host)

	if err := Configure(Config{Errors: ErrorsConfig{Verbose: true}}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if errors.DefaultHandler != host {
		t.Error("Configure replaced a host-installed error handler")
	}
}

func TestConfigureAlignsLogVerbosity(t *testing.T) {
	old := config
	t.Cleanup(func() {
		config = old
		errors.SetHandler(nil)
	})
	errors.SetHandler(nil) // default LogHandler, verbose off

	if err := Configure(Config{Errors: ErrorsConfig{Verbose: true}}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	lh, ok := errors.DefaultHandler.(*errors.LogHandler)
	if !ok {
		t.Fatalf("handler = %T, want LogHandler", errors.DefaultHandler)
	}
	if !lh.Verbose {
		t.Error("Configure should align the log handler's verbosity")
	}
}

func TestConfigureDefaultsEmptyMode(t *testing.T) {
	old := config
	t.Cleanup(func() { config = old })

	if err := Configure(Config{}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if config.Validation.Mode != ValidationPanic {
		t.Errorf("mode = %q, want panic", config.Validation.Mode)
	}
}
