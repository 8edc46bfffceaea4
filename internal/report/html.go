package report

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nao1215/nistpqc/internal/model"
)

// DefaultHTMLTitle is the page title used when none is configured.
const DefaultHTMLTitle = "NIST PQC proposals"

// HTMLWriter outputs a standalone HTML page.
//
// The page is assembled as an html.Node tree. Every heading and cell is a
// text node, so scheme names such as "<script>" are shown literally.
type HTMLWriter struct {
	baseWriter

	// title is the content of the <title> element.
	title string

	// stylesheet is an optional stylesheet href.
	stylesheet string
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithTitle sets the page title.
func WithTitle(title string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.title = title
	}
}

// WithStylesheet links the page to a stylesheet.
func WithStylesheet(href string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.stylesheet = href
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		title:      DefaultHTMLTitle,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document as an HTML page.
func (w *HTMLWriter) Write(doc *model.Document) (int, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, w.page(doc)); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')
	return w.output.Write(buf.Bytes())
}

// page builds the full node tree for doc.
func (w *HTMLWriter) page(doc *model.Document) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	if w.stylesheet != "" {
		link := element(atom.Link)
		link.Attr = []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "type", Val: "text/css"},
			{Key: "href", Val: w.stylesheet},
		}
		head.AppendChild(link)
	}
	head.AppendChild(textElement(atom.Title, w.title))
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	for _, section := range doc.Sections {
		body.AppendChild(textElement(atom.H1, section.Heading))
		body.AppendChild(tableNode(section.Table))
	}
	htmlEl.AppendChild(body)

	return root
}

// tableNode builds a <table> with a header row of <th> and data rows of <td>.
func tableNode(t model.Table) *html.Node {
	table := element(atom.Table)

	header := element(atom.Tr)
	for _, h := range t.Header {
		header.AppendChild(textElement(atom.Th, h))
	}
	table.AppendChild(header)

	for _, row := range t.Cells() {
		tr := element(atom.Tr)
		for _, cell := range row {
			tr.AppendChild(textElement(atom.Td, cell))
		}
		table.AppendChild(tr)
	}

	return table
}

// element creates an empty element node.
func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// textElement creates an element whose only child is a text node.
func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
