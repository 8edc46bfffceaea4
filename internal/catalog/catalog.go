package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Scheme is a single cryptographic proposal.
type Scheme struct {
	// Name is the proposal name. It is the catalog key and must be unique
	// after Unicode NFC normalization.
	Name string `json:"name" yaml:"name"`

	// ID is an informational identifier. It is never used for lookup.
	ID int `json:"id" yaml:"id"`

	// Problem is an index into the catalog's problem labels.
	Problem int `json:"problem" yaml:"problem"`

	// Signature is true for signature schemes and false for
	// encryption/key exchange schemes.
	Signature bool `json:"signature" yaml:"signature"`
}

// Catalog is an immutable, insertion-ordered mapping from scheme name to Scheme.
// The zero value is not usable; build one with New or Default.
type Catalog struct {
	problems []string
	schemes  []Scheme
	index    map[string]int
}

// New builds a Catalog from problem labels and schemes.
// The order of schemes is preserved and becomes the display order.
//
// New fails fast: it returns an *IntegrityError for the first scheme whose
// problem index is out of range, and ErrDuplicateScheme when a name repeats.
// Both slices are copied, so later changes by the caller do not leak in.
func New(problems []string, schemes []Scheme) (*Catalog, error) {
	if len(problems) == 0 {
		return nil, ErrNoProblems
	}

	c := &Catalog{
		problems: slices.Clone(problems),
		schemes:  make([]Scheme, 0, len(schemes)),
		index:    make(map[string]int, len(schemes)),
	}

	for _, s := range schemes {
		if s.Problem < 0 || s.Problem >= len(c.problems) {
			return nil, &IntegrityError{Scheme: s.Name, Problem: s.Problem, Count: len(c.problems)}
		}
		key := nameKey(s.Name)
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScheme, s.Name)
		}
		c.index[key] = len(c.schemes)
		c.schemes = append(c.schemes, s)
	}

	return c, nil
}

// Len returns the number of schemes in the catalog.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// Schemes returns a copy of all schemes in insertion order.
func (c *Catalog) Schemes() []Scheme {
	return slices.Clone(c.schemes)
}

// All calls yield for each scheme in insertion order until yield returns false.
func (c *Catalog) All(yield func(Scheme) bool) {
	for _, s := range c.schemes {
		if !yield(s) {
			return
		}
	}
}

// Lookup returns the scheme with the given name. Names that differ only in
// their Unicode composition match.
func (c *Catalog) Lookup(name string) (Scheme, bool) {
	i, ok := c.index[nameKey(name)]
	if !ok {
		return Scheme{}, false
	}
	return c.schemes[i], true
}

// Problems returns a copy of the problem labels.
func (c *Catalog) Problems() []string {
	return slices.Clone(c.problems)
}

// ProblemLabel returns the label at index, or false if index is out of range.
func (c *Catalog) ProblemLabel(index int) (string, bool) {
	if index < 0 || index >= len(c.problems) {
		return "", false
	}
	return c.problems[index], true
}

// Label returns the problem label of s.
// Schemes obtained from this catalog always have a valid index.
func (c *Catalog) Label(s Scheme) string {
	label, _ := c.ProblemLabel(s.Problem)
	return label
}

// CountSignatures returns how many schemes are signature schemes.
func (c *Catalog) CountSignatures() int {
	n := 0
	for _, s := range c.schemes {
		if s.Signature {
			n++
		}
	}
	return n
}

// nameKey returns the index key for a scheme name.
func nameKey(name string) string {
	return norm.NFC.String(name)
}
