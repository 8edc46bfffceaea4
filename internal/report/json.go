package report

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/nao1215/nistpqc/internal/model"
)

// JSONWriter outputs documents in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is the nistpqc version recorded in the output.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the generating version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps a document with output metadata.
type JSONReport struct {
	// Version is the nistpqc version that generated this report.
	Version string `json:"version,omitempty"`

	// CatalogDigest is the hex SHA3-256 digest of the rendered rows.
	// It changes whenever a heading, name, label, or row order changes.
	CatalogDigest string `json:"catalog_digest"`

	// Sections are the rendered sections in display order.
	Sections []model.Section `json:"sections"`
}

// NewJSONReport creates a JSONReport for doc.
func NewJSONReport(doc *model.Document, version string) *JSONReport {
	return &JSONReport{
		Version:       version,
		CatalogDigest: Digest(doc),
		Sections:      doc.Sections,
	}
}

// Write outputs the document wrapped with metadata.
func (w *JSONWriter) Write(doc *model.Document) (int, error) {
	return w.writeJSON(NewJSONReport(doc, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// Digest returns the hex SHA3-256 digest of the document's text content.
// Strings and counts are length-prefixed, so the encoding is unambiguous.
func Digest(doc *model.Document) string {
	h := sha3.New256()
	var n [8]byte
	writeLen := func(l int) {
		binary.LittleEndian.PutUint64(n[:], uint64(l))
		_, _ = h.Write(n[:])
	}
	writeString := func(s string) {
		writeLen(len(s))
		_, _ = h.Write([]byte(s))
	}

	writeLen(len(doc.Sections))
	for _, section := range doc.Sections {
		writeString(section.Heading)
		writeLen(len(section.Table.Header))
		for _, cell := range section.Table.Header {
			writeString(cell)
		}
		writeLen(len(section.Table.Rows))
		for _, row := range section.Table.Rows {
			writeString(row.Name)
			writeString(row.Problem)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
