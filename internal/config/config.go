package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/nistpqc/internal/report"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "nistpqc"

	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = report.FormatText

	// DefaultTitle is the HTML page title used when none is configured.
	DefaultTitle = report.DefaultHTMLTitle
)

// Config holds all configuration options for nistpqc.
// This struct is populated from the configuration file and CLI flags and
// passed through the application rather than kept in global state.
type Config struct {
	// Format is the output format of the render command.
	Format report.Format

	// OutputFile is the path the document is written to.
	// When empty, the document is written to stdout.
	OutputFile string

	// CatalogFile is an optional catalog YAML file.
	// When empty, the embedded NIST round-1 catalog is rendered.
	CatalogFile string

	// Title is the HTML page title.
	Title string

	// Stylesheet is an optional stylesheet href for HTML output.
	Stylesheet string

	// ShowCount adds per-table row counts to text output and a total
	// to Markdown output.
	ShowCount bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Title:  DefaultTitle,
	}
}

// XDGConfigDir returns the XDG config directory for nistpqc.
// On Linux: ~/.config/nistpqc
// On macOS: ~/Library/Application Support/nistpqc
// On Windows: %APPDATA%\nistpqc
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply overlays the non-empty values of f onto c.
// A nil f leaves c unchanged.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if f.Format != "" {
		format, err := report.ParseFormat(f.Format)
		if err != nil {
			return ErrInvalidFormat
		}
		c.Format = format
	}
	if f.Output != "" {
		c.OutputFile = f.Output
	}
	if f.Catalog != "" {
		c.CatalogFile = f.Catalog
	}
	if f.Title != "" {
		c.Title = f.Title
	}
	if f.Stylesheet != "" {
		c.Stylesheet = f.Stylesheet
	}
	if f.ShowCount {
		c.ShowCount = true
	}

	return nil
}

// Validate checks if the configuration is valid.
// It returns the first error found.
func (c *Config) Validate() error {
	if !slices.Contains(report.Formats(), c.Format) {
		return ErrInvalidFormat
	}

	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}

	return nil
}
