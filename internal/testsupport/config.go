package testsupport

import (
	"path/filepath"
	"testing"

	"irweave/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InboxDir = filepath.Join(base, "inbox")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Workflow.PollInterval = 1

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithMaxAttempts overrides the retry budget on the test config.
func WithMaxAttempts(attempts int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Workflow.MaxAttempts = attempts
	}
}

// WithTidyLabels enables label title-casing on the test config.
func WithTidyLabels() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Conversion.TidyLabels = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.InboxDir)
}
