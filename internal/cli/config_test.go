package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	deperrors "depsheet/pkg/errors"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	appDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(appDir, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "csv" {
		t.Errorf("Format = %q, want csv", cfg.Format)
	}
}

func TestLoadConfigFromXDGHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeConfig(t, dir, `format = "tsv"`)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "tsv" {
		t.Errorf("Format = %q, want tsv", cfg.Format)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `format = "json"`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestLoadConfigExplicitPathMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !deperrors.Is(err, deperrors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", deperrors.GetCode(err))
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `format = [not toml`)

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !deperrors.Is(err, deperrors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", deperrors.GetCode(err))
	}
}

func TestConfigFormatFlowsIntoExport(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `format = "tsv"`)
	t.Setenv("XDG_CONFIG_HOME", dir)

	root, out := newTestRoot(t)
	// newTestRoot resets XDG_CONFIG_HOME; point it back at our config.
	t.Setenv("XDG_CONFIG_HOME", dir)
	root.SetIn(strings.NewReader("+--- com.x:y:1.0\n"))
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "group\tname\tversion\ncom.x\ty\t1.0\n" {
		t.Errorf("output = %q, want tab-separated rows", out.String())
	}
}
