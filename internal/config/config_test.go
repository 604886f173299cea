package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"paradup/internal/config"
	"paradup/internal/failures"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Scan.Dir != "data/" {
		t.Fatalf("unexpected scan dir: %q", cfg.Scan.Dir)
	}
	if cfg.Scan.Match != "soft" {
		t.Fatalf("unexpected match: %q", cfg.Scan.Match)
	}
	if cfg.Scan.Threshold != 2 {
		t.Fatalf("unexpected threshold: %d", cfg.Scan.Threshold)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{".txt"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	if cfg.Scan.Identity != "relative" {
		t.Fatalf("unexpected identity: %q", cfg.Scan.Identity)
	}
	if cfg.Output.Path != "" {
		t.Fatalf("expected no output path, got %q", cfg.Output.Path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFileOverridesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")

	path := writeConfig(t, `
[scan]
dir = " corpus "
match = "EXACT"
threshold = 3
extensions = ["TXT", ".md", " "]
identity = "Base"

[output]
path = "~/reports/dups.json"

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Scan.Dir != "corpus" {
		t.Fatalf("unexpected dir: %q", cfg.Scan.Dir)
	}
	if cfg.Scan.Match != "exact" || cfg.Scan.Threshold != 3 || cfg.Scan.Identity != "base" {
		t.Fatalf("unexpected scan section: %+v", cfg.Scan)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{".txt", ".md"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	if want := filepath.Join(home, "reports", "dups.json"); cfg.Output.Path != want {
		t.Fatalf("unexpected output path: got %q want %q", cfg.Output.Path, want)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadEnvironmentFallbacks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "/srv/texts")
	t.Setenv("PARADUP_MATCH", "exact")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Scan.Dir != "/srv/texts" || cfg.Scan.Match != "exact" {
		t.Fatalf("expected env values, got %+v", cfg.Scan)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")

	tests := []struct {
		name string
		body string
		want string
	}{
		{"match", "[scan]\nmatch = \"strict\"\n", "scan.match"},
		{"threshold", "[scan]\nthreshold = -2\n", "scan.threshold"},
		{"identity", "[scan]\nidentity = \"inode\"\n", "scan.identity"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown key", "[scan]\ndirectory = \"x\"\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMarksValidationErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "bogus")

	_, _, _, err := config.Load("")
	if !errors.Is(err, failures.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLoadWithOverridesBeatsEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "/srv/texts")
	t.Setenv("PARADUP_MATCH", "bogus")
	path := writeConfig(t, "[scan]\ndir = \"from-file\"\nmatch = \"exact\"\n")

	cfg, _, _, err := config.LoadWithOverrides(path, config.Overrides{Dir: " corpus ", Match: "SOFT"})
	if err != nil {
		t.Fatalf("LoadWithOverrides returned error: %v", err)
	}
	if cfg.Scan.Dir != "corpus" || cfg.Scan.Match != "soft" {
		t.Fatalf("expected override values, got %+v", cfg.Scan)
	}
}

func TestLoadDeduplicatesExtensions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")
	path := writeConfig(t, "[scan]\nextensions = [\"TXT\", \".txt\", \" md \", \"\"]\n")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := []string{".txt", ".md"}; !reflect.DeepEqual(cfg.Scan.Extensions, want) {
		t.Fatalf("extensions = %v, want %v", cfg.Scan.Extensions, want)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	def := config.Default()
	if !reflect.DeepEqual(cfg.Scan, def.Scan) {
		t.Fatalf("sample scan section %+v differs from defaults %+v", cfg.Scan, def.Scan)
	}
	if cfg.Logging.Format != def.Logging.Format || cfg.Logging.Level != def.Logging.Level {
		t.Fatalf("sample logging section %+v differs from defaults %+v", cfg.Logging, def.Logging)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARADUP_DIR", "")
	t.Setenv("PARADUP_MATCH", "")
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("expected sample to load cleanly, exists=%v err=%v", exists, err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/data")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "data"); got != want {
		t.Fatalf("ExpandPath() = %q, want %q", got, want)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
