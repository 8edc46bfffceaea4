package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testProblems mirrors the first labels of the NIST catalog.
var testProblems = []string{"?", "Code", "PoSSo", "Lattice", "Lattice(NTRU)"}

// TestNew tests catalog construction and its integrity checks.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		schemes := []Scheme{
			{Name: "Falcon", ID: 17, Problem: 4, Signature: true},
			{Name: "BIKE", ID: 2, Problem: 1},
			{Name: "AKCN", ID: 0, Problem: 0},
		}
		c, err := New(testProblems, schemes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff(schemes, c.Schemes()); diff != "" {
			t.Errorf("schemes mismatch (-want +got):\n%s", diff)
		}
		if c.Len() != 3 {
			t.Errorf("expected 3 schemes, got %d", c.Len())
		}
	})

	t.Run("rejects problem index past the end", func(t *testing.T) {
		t.Parallel()

		_, err := New(testProblems, []Scheme{
			{Name: "BIKE", ID: 2, Problem: 1},
			{Name: "Broken", ID: 99, Problem: len(testProblems)},
		})
		if !errors.Is(err, ErrCatalogIntegrity) {
			t.Fatalf("expected ErrCatalogIntegrity, got %v", err)
		}

		var ie *IntegrityError
		if !errors.As(err, &ie) {
			t.Fatalf("expected *IntegrityError, got %T", err)
		}
		if ie.Scheme != "Broken" {
			t.Errorf("expected scheme 'Broken', got %q", ie.Scheme)
		}
		if ie.Problem != len(testProblems) {
			t.Errorf("expected problem %d, got %d", len(testProblems), ie.Problem)
		}
		if !strings.Contains(err.Error(), `"Broken"`) {
			t.Errorf("expected error to name the scheme, got %q", err.Error())
		}
	})

	t.Run("rejects negative problem index", func(t *testing.T) {
		t.Parallel()

		_, err := New(testProblems, []Scheme{{Name: "Negative", Problem: -1}})
		if !errors.Is(err, ErrCatalogIntegrity) {
			t.Fatalf("expected ErrCatalogIntegrity, got %v", err)
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		_, err := New(testProblems, []Scheme{
			{Name: "BIKE", ID: 2, Problem: 1},
			{Name: "BIKE", ID: 3, Problem: 1},
		})
		if !errors.Is(err, ErrDuplicateScheme) {
			t.Fatalf("expected ErrDuplicateScheme, got %v", err)
		}
	})

	t.Run("rejects names that differ only in composition", func(t *testing.T) {
		t.Parallel()

		// "é" precomposed and as "e" plus a combining acute accent.
		_, err := New(testProblems, []Scheme{
			{Name: "Caf\u00e9", ID: 1, Problem: 1},
			{Name: "Cafe\u0301", ID: 2, Problem: 1},
		})
		if !errors.Is(err, ErrDuplicateScheme) {
			t.Errorf("expected ErrDuplicateScheme, got %v", err)
		}
	})

	t.Run("keeps identical entries under different names", func(t *testing.T) {
		t.Parallel()

		c, err := New(testProblems, []Scheme{
			{Name: "EMBLEM", ID: 15, Problem: 3},
			{Name: "R.EMBLEM", ID: 16, Problem: 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() != 2 {
			t.Errorf("expected 2 schemes, got %d", c.Len())
		}
	})

	t.Run("rejects empty problem list", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil, nil)
		if !errors.Is(err, ErrNoProblems) {
			t.Fatalf("expected ErrNoProblems, got %v", err)
		}
	})

	t.Run("copies its inputs", func(t *testing.T) {
		t.Parallel()

		problems := []string{"?", "Code"}
		schemes := []Scheme{{Name: "BIKE", Problem: 1}}
		c, err := New(problems, schemes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		problems[1] = "Changed"
		schemes[0].Name = "Changed"

		if got := c.Label(c.Schemes()[0]); got != "Code" {
			t.Errorf("expected label 'Code', got %q", got)
		}
		if _, ok := c.Lookup("BIKE"); !ok {
			t.Error("expected BIKE to still be present")
		}
	})
}

// TestCatalogAccessors tests lookups against a small catalog.
func TestCatalogAccessors(t *testing.T) {
	t.Parallel()

	c, err := New(testProblems, []Scheme{
		{Name: "BIKE", ID: 2, Problem: 1},
		{Name: "Falcon", ID: 17, Problem: 4, Signature: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("lookup finds scheme", func(t *testing.T) {
		t.Parallel()
		s, ok := c.Lookup("Falcon")
		if !ok {
			t.Fatal("expected Falcon to be found")
		}
		if s.ID != 17 || !s.Signature {
			t.Errorf("unexpected scheme %+v", s)
		}
	})

	t.Run("lookup normalizes the name", func(t *testing.T) {
		t.Parallel()

		c, err := New(testProblems, []Scheme{{Name: "Caf\u00e9", ID: 1, Problem: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := c.Lookup("Cafe\u0301")
		if !ok {
			t.Fatal("expected decomposed name to match")
		}
		if got.Name != "Caf\u00e9" {
			t.Errorf("expected stored name to be kept, got %q", got.Name)
		}
	})

	t.Run("lookup misses unknown scheme", func(t *testing.T) {
		t.Parallel()
		if _, ok := c.Lookup("Rainbow"); ok {
			t.Error("expected Rainbow to be absent")
		}
	})

	t.Run("label resolves problem", func(t *testing.T) {
		t.Parallel()
		s, _ := c.Lookup("Falcon")
		if got := c.Label(s); got != "Lattice(NTRU)" {
			t.Errorf("expected 'Lattice(NTRU)', got %q", got)
		}
	})

	t.Run("problem label out of range", func(t *testing.T) {
		t.Parallel()
		if _, ok := c.ProblemLabel(len(testProblems)); ok {
			t.Error("expected out-of-range index to fail")
		}
	})

	t.Run("all stops early", func(t *testing.T) {
		t.Parallel()
		var names []string
		for s := range c.All {
			names = append(names, s.Name)
			break
		}
		if diff := cmp.Diff([]string{"BIKE"}, names); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("counts signatures", func(t *testing.T) {
		t.Parallel()
		if got := c.CountSignatures(); got != 1 {
			t.Errorf("expected 1 signature scheme, got %d", got)
		}
	})
}

// TestDefault tests the embedded NIST round-1 catalog.
func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()

	if c.Len() != 71 {
		t.Errorf("expected 71 schemes, got %d", c.Len())
	}
	if got := c.CountSignatures(); got != 20 {
		t.Errorf("expected 20 signature schemes, got %d", got)
	}
	if got := len(c.Problems()); got != 10 {
		t.Errorf("expected 10 problem categories, got %d", got)
	}

	tests := []struct {
		name      string
		label     string
		signature bool
	}{
		{name: "BIKE", label: "Code", signature: false},
		{name: "Falcon", label: "Lattice(NTRU)", signature: true},
		{name: "SIKE", label: "Isogeny", signature: false},
		{name: "SPHINCS+", label: "Hash", signature: true},
		{name: "HK17", label: "Hypercomplex", signature: false},
		{name: "AKCN", label: "?", signature: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, ok := c.Lookup(tt.name)
			if !ok {
				t.Fatalf("expected %s in default catalog", tt.name)
			}
			if got := c.Label(s); got != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, got)
			}
			if s.Signature != tt.signature {
				t.Errorf("expected signature=%v, got %v", tt.signature, s.Signature)
			}
		})
	}

	t.Run("first and last entries", func(t *testing.T) {
		t.Parallel()
		schemes := c.Schemes()
		if schemes[0].Name != "AKCN" {
			t.Errorf("expected first scheme AKCN, got %q", schemes[0].Name)
		}
		if schemes[len(schemes)-1].Name != "WalnutDSA" {
			t.Errorf("expected last scheme WalnutDSA, got %q", schemes[len(schemes)-1].Name)
		}
	})
}
