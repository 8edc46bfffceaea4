package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrCatalogNotFound is returned when a catalog file does not exist.
var ErrCatalogNotFound = errors.New("catalog file not found")

// File is the on-disk YAML representation of a catalog.
// Schemes are a sequence rather than a mapping so that their order survives
// decoding.
//
//	problems: ["?", "Code", "Lattice"]
//	schemes:
//	  - name: BIKE
//	    id: 2
//	    problem: 1
//	    signature: false
type File struct {
	Problems []string `yaml:"problems"`
	Schemes  []Scheme `yaml:"schemes"`
}

// Decode reads a catalog in YAML form from r and validates it with New.
func Decode(r io.Reader) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProblems
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Problems, f.Schemes)
}

// LoadFile loads and validates a catalog YAML file.
// If the file does not exist, it returns ErrCatalogNotFound.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Load returns the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
