// Package render turns a catalog into the two tables shown to the user:
// encryption/key exchange schemes and signature schemes.
//
// Rendering is a pure function of the catalog. It performs no I/O; the
// output medium is supplied by the caller, either as a Sink or by taking the
// returned tables and handing them to a report writer.
package render
