package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"paradup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose scan directory is a fresh temp directory.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Scan.Dir = filepath.Join(base, "data")
	if err := os.MkdirAll(cfgVal.Scan.Dir, 0o755); err != nil {
		t.Fatalf("mkdir scan dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMatch overrides the default match type name.
func WithMatch(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Match = name
	}
}

// WithScanDir points the scan at an existing directory.
func WithScanDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Dir = dir
	}
}

// WithOutput sets the JSON report destination under the config's temp base.
func WithOutput(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = filepath.Join(b.baseDir, "reports", name)
	}
}

// WriteConfig encodes cfg as TOML into a temp file and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "paradup.toml")
	WriteBytes(t, path, data)
	return path
}

// IsolateEnv points HOME at an empty directory and clears the environment
// overrides so tests never read a developer's configuration.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")
	return home
}
