// Package model defines the rendered output structures used throughout nistpqc.
//
// This package contains the following main types:
//   - Row: A single (name, problem) pair
//   - Table: A header row followed by data rows
//   - Section: A heading and its table
//   - Document: The ordered list of sections produced by one render
//
// The renderer and the report writers both import this package and never
// each other. The models are plain data and serialize directly to JSON.
package model
