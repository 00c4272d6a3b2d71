package bridge

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/bridge/pkg/errors"
)

// ValidationMode selects how the bridge responds to detected contract
// misuse. Detection always happens; only the response varies.
type ValidationMode string

const (
	// ValidationPanic reports the error and panics natively. The default.
	ValidationPanic ValidationMode = "panic"
	// ValidationReport reports the error and returns a zero result.
	ValidationReport ValidationMode = "report"
)

// Config holds the optional bridge.yaml runtime configuration.
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Errors     ErrorsConfig     `yaml:"errors"`
}

// ValidationConfig controls contract enforcement.
type ValidationConfig struct {
	// Mode is the misuse response: "panic" (default) or "report".
	Mode ValidationMode `yaml:"mode,omitempty"`
	// EnforceUIThread pins the first calling goroutine and treats calls
	// from any other goroutine as misuse.
	EnforceUIThread bool `yaml:"enforce_ui_thread,omitempty"`
	// TrackLeaks records the creation stack of every handle for
	// LeakReport. Costs an allocation per handle.
	TrackLeaks bool `yaml:"track_leaks,omitempty"`
}

// ErrorsConfig controls error reporting.
type ErrorsConfig struct {
	// Verbose attaches stack traces to reported errors and enables
	// verbose stderr logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the configuration used when no bridge.yaml exists.
func DefaultConfig() Config {
	return Config{
		Validation: ValidationConfig{Mode: ValidationPanic},
	}
}

// config is the active configuration.
var config = DefaultConfig()

// Configure installs cfg as the active configuration. When the stderr log
// handler is the active error handler its verbosity is aligned with cfg; a
// handler the host installed through errors.SetHandler stays in place.
func Configure(cfg Config) error {
	if cfg.Validation.Mode == "" {
		cfg.Validation.Mode = ValidationPanic
	}
	if cfg.Validation.Mode != ValidationPanic && cfg.Validation.Mode != ValidationReport {
		return &errors.BridgeError{
			Op:   "bridge.Configure",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown validation mode %q", cfg.Validation.Mode),
		}
	}
	config = cfg
	if lh, ok := errors.DefaultHandler.(*errors.LogHandler); ok && lh.Verbose != cfg.Errors.Verbose {
		errors.SetHandler(&errors.LogHandler{Verbose: cfg.Errors.Verbose})
	}
	return nil
}

// LoadOptional reads bridge.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "bridge.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read bridge.yaml: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bridge.yaml: %w", err)
	}
	return &cfg, nil
}
