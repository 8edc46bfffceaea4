package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/nistpqc/internal/model"
)

// Writer defines the interface for document output.
// Implementations write a rendered document in a specific format.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *model.Document) (int, error)
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// Formats lists every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatHTML}
}

// ParseFormat converts a user-supplied name into a Format.
// "md" and "txt" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Extension returns the file extension used for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// NewWriter returns the default Writer for format writing to output.
// version is embedded by formats that carry metadata.
func NewWriter(format Format, output io.Writer, version string) (Writer, error) {
	switch format {
	case FormatText:
		return NewSimpleWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version)), nil
	case FormatHTML:
		return NewHTMLWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// MultiWriter writes a document to multiple Writers in order.
// Each Writer encodes the document itself, so documents are fanned out
// rather than bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the document to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(doc *model.Document) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
