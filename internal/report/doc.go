// Package report provides output writers for rendered documents.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Aligned plain-text tables for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown tables
//   - JSONWriter: Structured JSON output for tool integration
//   - HTMLWriter: A standalone HTML page built from text nodes
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
