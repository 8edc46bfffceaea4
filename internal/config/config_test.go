package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/nistpqc/internal/report"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != report.FormatText {
			t.Errorf("expected Format to be 'text', got %q", cfg.Format)
		}
	})

	t.Run("default title", func(t *testing.T) {
		t.Parallel()
		if cfg.Title != "NIST PQC proposals" {
			t.Errorf("expected default title, got %q", cfg.Title)
		}
	})

	t.Run("default output is stdout", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFile != "" {
			t.Errorf("expected empty OutputFile, got %q", cfg.OutputFile)
		}
	})

	t.Run("default catalog is embedded", func(t *testing.T) {
		t.Parallel()
		if cfg.CatalogFile != "" {
			t.Errorf("expected empty CatalogFile, got %q", cfg.CatalogFile)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("every supported format is valid", func(t *testing.T) {
		t.Parallel()
		for _, f := range report.Formats() {
			cfg := NewConfig()
			cfg.Format = f
			if err := cfg.Validate(); err != nil {
				t.Errorf("format %q: expected no error, got %v", f, err)
			}
		}
	})

	t.Run("unknown format returns ErrInvalidFormat", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Format = "pdf"
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("empty format returns ErrInvalidFormat", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Format = ""
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("blank title returns ErrEmptyTitle", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Title = "   "
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})
}

// TestConfigApply tests overlaying a configuration file onto defaults.
func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.Apply(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format != DefaultFormat {
			t.Errorf("expected default format, got %q", cfg.Format)
		}
	})

	t.Run("overrides set fields", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		err := cfg.Apply(&File{
			Format:     "md",
			Output:     "out/table.md",
			Catalog:    "/tmp/catalog.yaml",
			Title:      "Round 1",
			Stylesheet: "style.css",
			ShowCount:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format != report.FormatMarkdown {
			t.Errorf("expected markdown, got %q", cfg.Format)
		}
		if cfg.OutputFile != "out/table.md" {
			t.Errorf("unexpected OutputFile %q", cfg.OutputFile)
		}
		if cfg.CatalogFile != "/tmp/catalog.yaml" {
			t.Errorf("unexpected CatalogFile %q", cfg.CatalogFile)
		}
		if cfg.Title != "Round 1" || cfg.Stylesheet != "style.css" || !cfg.ShowCount {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("keeps defaults for empty fields", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.Apply(&File{Output: "x.txt"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Title != DefaultTitle {
			t.Errorf("expected default title, got %q", cfg.Title)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.Apply(&File{Format: "pdf"}); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads valid file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `format: html
output: public/index.html
catalog: catalogs/round1.yaml
title: NIST PQC round 1
showCount: true
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Format != "html" {
			t.Errorf("expected format html, got %q", cf.Format)
		}
		if cf.Output != "public/index.html" {
			t.Errorf("unexpected output %q", cf.Output)
		}
		if want := filepath.Join(dir, "catalogs", "round1.yaml"); cf.Catalog != want {
			t.Errorf("expected catalog %q, got %q", want, cf.Catalog)
		}
		if !cf.ShowCount {
			t.Error("expected showCount to be true")
		}
	})

	t.Run("absolute catalog path is kept", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		abs := filepath.Join(dir, "abs.yaml")
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("catalog: "+abs+"\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Catalog != abs {
			t.Errorf("expected %q, got %q", abs, cf.Catalog)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("format: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the configuration search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("format: json\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if !strings.HasSuffix(XDGConfigDir(), AppName) {
		t.Errorf("expected directory to end with %q, got %q", AppName, XDGConfigDir())
	}
}
