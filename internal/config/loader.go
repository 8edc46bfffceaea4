package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".nistpqc"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// File represents the structure of the .nistpqc configuration file.
type File struct {
	// Format is the default output format (text, markdown, json, html).
	Format string `yaml:"format,omitempty"`

	// Output is the default output file path.
	Output string `yaml:"output,omitempty"`

	// Catalog is the path to a catalog YAML file to render instead of
	// the embedded one.
	Catalog string `yaml:"catalog,omitempty"`

	// Title is the HTML page title.
	Title string `yaml:"title,omitempty"`

	// Stylesheet is a stylesheet href for HTML output.
	Stylesheet string `yaml:"stylesheet,omitempty"`

	// ShowCount enables row counts in text and Markdown output.
	ShowCount bool `yaml:"showCount,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
//
// A relative catalog path is resolved against the directory of the
// configuration file.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Catalog != "" && !filepath.IsAbs(cf.Catalog) {
		cf.Catalog = filepath.Join(filepath.Dir(path), cf.Catalog)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .nistpqc in the current directory
// 3. Look for .nistpqc in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
