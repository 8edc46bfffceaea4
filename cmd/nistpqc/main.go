// Package main provides the entry point for the nistpqc CLI.
//
// nistpqc renders the NIST post-quantum cryptography round-1 proposals as
// two tables: encryption/key exchange schemes and signature schemes, each
// listed with the hard problem its security rests on.
//
// Usage:
//
//	nistpqc render
//	nistpqc render --format html -o index.html
//	nistpqc export ./out
//
// See --help for all available options.
package main

// main is the entry point for nistpqc.
func main() {
	Execute()
}
