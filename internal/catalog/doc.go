// Package catalog holds the immutable set of post-quantum scheme proposals
// rendered by nistpqc.
//
// A Catalog pairs an ordered list of problem labels (the hard mathematical
// problem a scheme's security reduces to) with an insertion-ordered list of
// schemes. Every scheme's problem index is checked once, in New, so callers
// never see a catalog with a dangling label.
//
// Catalogs are passed into the renderer as values. Small catalogs are built
// with New; the embedded NIST round-1 data is returned by Default.
package catalog
