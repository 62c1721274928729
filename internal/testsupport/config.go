package testsupport

import (
	"path/filepath"
	"testing"

	"stenocodec/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.OutDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithScheme sets the active encoding scheme on the test config.
func WithScheme(scheme string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Codec.Scheme = scheme
	}
}

// WithUnknownPolicy sets how decode treats unrecognized tokens.
func WithUnknownPolicy(policy string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Codec.OnUnknown = policy
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
