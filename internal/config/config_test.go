package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framecap.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "json"

[convert]
backend = "avx2"

[capture]
max_cache_frames = 30
max_available_frames = 5

[metrics]
listen = ":9100"
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if opts.LoggingLevel != "debug" {
		t.Errorf("logging level = %q, want debug", opts.LoggingLevel)
	}
	if opts.LoggingFormat != "json" {
		t.Errorf("logging format = %q, want json", opts.LoggingFormat)
	}
	if opts.Backend != "avx2" {
		t.Errorf("backend = %q, want avx2", opts.Backend)
	}
	if opts.MaxCacheFrames != 30 {
		t.Errorf("max cache frames = %d, want 30", opts.MaxCacheFrames)
	}
	if opts.MaxAvailableFrames != 5 {
		t.Errorf("max available frames = %d, want 5", opts.MaxAvailableFrames)
	}
	if opts.MetricsListen != ":9100" {
		t.Errorf("metrics listen = %q, want :9100", opts.MetricsListen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("a missing file must not be an error, got %v", err)
	}
	if opts.Backend != "" || opts.MaxCacheFrames != 0 {
		t.Errorf("missing file populated options: %+v", opts)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[convert]
backend = "cpu"
`)
	t.Setenv("FRAMECAP_CONVERT_BACKEND", "neon")
	t.Setenv("FRAMECAP_MAX_CACHE_FRAMES", "7")

	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Backend != "neon" {
		t.Errorf("backend = %q, env override lost", opts.Backend)
	}
	if opts.MaxCacheFrames != 7 {
		t.Errorf("max cache frames = %d, env override lost", opts.MaxCacheFrames)
	}
}

func TestChangedCLIFlagWins(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
`)
	t.Setenv("FRAMECAP_LOGGING_LEVEL", "error")

	cmd := &cobra.Command{}
	cmd.Flags().String("logging-level", "info", "")
	if err := cmd.Flags().Set("logging-level", "warn"); err != nil {
		t.Fatal(err)
	}

	opts := Options{Config: path, LoggingLevel: "warn"}
	if err := LoadConfig(&opts, cmd); err != nil {
		t.Fatal(err)
	}
	if opts.LoggingLevel != "warn" {
		t.Errorf("logging level = %q, CLI flag overridden", opts.LoggingLevel)
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Backend", "backend"},
		{"LoggingLevel", "logging-level"},
		{"MaxCacheFrames", "max-cache-frames"},
		{"MetricsListen", "metrics-listen"},
	}
	for _, tt := range tests {
		if got := fieldNameToFlag(tt.in); got != tt.want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetNestedValue(t *testing.T) {
	data := map[string]any{
		"capture": map[string]any{
			"max_cache_frames": int64(12),
		},
		"top": "level",
	}

	if got := getNestedValue(data, "capture.max_cache_frames"); got != int64(12) {
		t.Errorf("nested lookup = %v", got)
	}
	if got := getNestedValue(data, "top"); got != "level" {
		t.Errorf("top-level lookup = %v", got)
	}
	if got := getNestedValue(data, "capture.absent"); got != nil {
		t.Errorf("absent key = %v, want nil", got)
	}
	if got := getNestedValue(data, "top.deeper"); got != nil {
		t.Errorf("descent through a scalar = %v, want nil", got)
	}
}

func TestLoadLoggingConfig(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "warn"
format = "json"
convert = "debug"
capture = "error"
`)

	cfg := LoadLoggingConfig(path)
	if cfg.Level != "warn" || cfg.Format != "json" {
		t.Errorf("level/format = %q/%q", cfg.Level, cfg.Format)
	}
	if cfg.Modules["convert"] != "debug" || cfg.Modules["capture"] != "error" {
		t.Errorf("module levels = %v", cfg.Modules)
	}
	if _, reserved := cfg.Modules["level"]; reserved {
		t.Error("reserved key leaked into module levels")
	}
}

func TestLoadLoggingConfigDefaults(t *testing.T) {
	cfg := LoadLoggingConfig("")
	if cfg.Level != "info" || cfg.Format != "text" {
		t.Errorf("defaults = %q/%q, want info/text", cfg.Level, cfg.Format)
	}

	cfg = LoadLoggingConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if cfg.Level != "info" {
		t.Errorf("missing file level = %q, want info", cfg.Level)
	}
}
