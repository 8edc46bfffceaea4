package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nao1215/nistpqc/internal/model"
)

// bannerWidth is the width of the "=" rules around section headings.
const bannerWidth = 70

// columnGap separates adjacent columns.
const columnGap = "  "

// SimpleWriter outputs human-readable, column-aligned text tables.
// This format is designed for terminal display.
//
// Column widths are measured in terminal cells rather than bytes, so
// names with wide or combining characters stay aligned.
type SimpleWriter struct {
	baseWriter

	// showCount appends a row count line after each table.
	showCount bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowCount configures the writer to print the row count of each table.
func WithShowCount(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showCount = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showCount:  false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs every section of doc as a banner followed by an aligned table.
func (w *SimpleWriter) Write(doc *model.Document) (int, error) {
	var sb strings.Builder

	for _, section := range doc.Sections {
		w.writeBanner(&sb, section.Heading)
		w.writeTable(&sb, section.Table)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeBanner writes a section heading between two rules.
func (w *SimpleWriter) writeBanner(sb *strings.Builder, heading string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")
	sb.WriteString(heading)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n\n")
}

// writeTable writes the header, a dashed separator, and the data rows.
func (w *SimpleWriter) writeTable(sb *strings.Builder, table model.Table) {
	cells := table.Cells()
	widths := columnWidths(table.Header, cells)

	writeRow(sb, table.Header, widths)

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	writeRow(sb, dashes, widths)

	for _, row := range cells {
		writeRow(sb, row, widths)
	}

	if w.showCount {
		sb.WriteString(fmt.Sprintf("\n(%d schemes)\n", table.Len()))
	}
	sb.WriteString("\n")
}

// columnWidths returns the display width of the widest cell in each column.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if cw := runewidth.StringWidth(row[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

// writeRow writes one padded line. The last column is not padded so lines
// carry no trailing spaces.
func writeRow(sb *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		if i == len(cells)-1 || i >= len(widths) {
			sb.WriteString(cell)
			continue
		}
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
	}
	sb.WriteString("\n")
}
