package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/nistpqc/internal/model"
)

// MarkdownWriter outputs documents in GitHub Flavored Markdown.
// Each section becomes a level-one heading followed by a table.
type MarkdownWriter struct {
	baseWriter

	// summary appends a total row count after the last section.
	summary bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithSummary appends a line with the total number of schemes.
func WithSummary(summary bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.summary = summary
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *model.Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	for _, section := range doc.Sections {
		md.H1(escapeText(section.Heading))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: escapeCells(section.Table.Header),
			Rows:   escapeRows(section.Table.Cells()),
		})
		md.PlainText("")
	}

	if w.summary {
		md.PlainTextf("*%d schemes in %d tables*", doc.TotalRows(), len(doc.Sections))
	}

	return len(md.String()), md.Build()
}

// escapeRows escapes every cell of rows.
func escapeRows(rows [][]string) [][]string {
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = escapeCells(row)
	}
	return escaped
}

// markdownEscaper backslash-escapes every character Markdown treats as markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
)

// escapeText escapes s so that it renders as literal text.
func escapeText(s string) string {
	return markdownEscaper.Replace(s)
}

// escapeCells escapes every cell with escapeText.
func escapeCells(cells []string) []string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeText(c)
	}
	return escaped
}
