package catalog

import (
	"errors"
	"fmt"
)

// Catalog construction errors.
var (
	// ErrCatalogIntegrity is matched (via errors.Is) by every *IntegrityError.
	ErrCatalogIntegrity = errors.New("catalog integrity error")

	// ErrDuplicateScheme is returned when two schemes share the same name.
	ErrDuplicateScheme = errors.New("duplicate scheme name")

	// ErrNoProblems is returned when the problem label list is empty.
	// Index 0 is reserved for "unknown", so a catalog needs at least one label.
	ErrNoProblems = errors.New("no problem categories defined")
)

// IntegrityError reports a scheme whose problem index does not refer to an
// existing problem label.
type IntegrityError struct {
	// Scheme is the name of the offending scheme.
	Scheme string

	// Problem is the out-of-range index.
	Problem int

	// Count is the number of problem labels the catalog defines.
	Count int
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: scheme %q references problem %d, but only %d problem categories exist",
		ErrCatalogIntegrity, e.Scheme, e.Problem, e.Count)
}

// Is reports whether target is ErrCatalogIntegrity.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrCatalogIntegrity
}
