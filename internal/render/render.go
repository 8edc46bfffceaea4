package render

import (
	"github.com/nao1215/nistpqc/internal/catalog"
	"github.com/nao1215/nistpqc/internal/model"
)

// Section headings, in display order.
const (
	HeadingEncryption = "Encryption/Key Exchange:"
	HeadingSignatures = "Signatures:"
)

// Sink is an append-only destination for rendered output.
// *model.Document implements Sink.
type Sink interface {
	AppendHeading(text string)
	AppendTable(t model.Table)
}

// Render partitions c by the Signature flag and returns the
// encryption/key exchange table and the signature table.
// Rows keep catalog order; every scheme lands in exactly one table.
func Render(c *catalog.Catalog) (enc, sig model.Table) {
	return table(c, false), table(c, true)
}

// table builds the table of schemes whose Signature flag equals signature.
func table(c *catalog.Catalog, signature bool) model.Table {
	t := model.NewTable()
	for s := range c.All {
		if s.Signature != signature {
			continue
		}
		t.Append(model.Row{Name: s.Name, Problem: c.Label(s)})
	}
	return t
}

// RenderTo appends heading, encryption table, heading, signature table to sink.
func RenderTo(c *catalog.Catalog, sink Sink) {
	enc, sig := Render(c)

	sink.AppendHeading(HeadingEncryption)
	sink.AppendTable(enc)
	sink.AppendHeading(HeadingSignatures)
	sink.AppendTable(sig)
}

// NewDocument renders c into a fresh Document.
func NewDocument(c *catalog.Catalog) *model.Document {
	doc := model.NewDocument()
	RenderTo(c, doc)
	doc.Close()
	return doc
}
