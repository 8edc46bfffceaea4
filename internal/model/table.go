package model

// Column headers shared by both rendered tables.
const (
	ColumnName    = "Name"
	ColumnProblem = "Problem"
)

// Row is one rendered table row: the scheme name and its problem label.
type Row struct {
	// Name is the scheme name.
	Name string `json:"name"`

	// Problem is the human-readable problem label.
	Problem string `json:"problem"`
}

// Cells returns the row as an ordered slice of cell texts.
func (r Row) Cells() []string {
	return []string{r.Name, r.Problem}
}

// Table is a header row followed by data rows.
type Table struct {
	// Header holds the column titles.
	Header []string `json:"header"`

	// Rows are the data rows in display order.
	Rows []Row `json:"rows"`
}

// NewTable creates an empty table with the standard Name/Problem header.
func NewTable() Table {
	return Table{
		Header: []string{ColumnName, ColumnProblem},
		Rows:   []Row{},
	}
}

// Append adds a row to the end of the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Cells returns the data rows as a slice of cell slices.
func (t Table) Cells() [][]string {
	cells := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells[i] = r.Cells()
	}
	return cells
}

// Section is a heading and the table that follows it.
type Section struct {
	// Heading is the section title, for example "Signatures:".
	Heading string `json:"heading"`

	// Table is the section body.
	Table Table `json:"table"`
}

// Document is an append-only, ordered sequence of sections.
// It is the in-memory stand-in for a page body and implements the
// renderer's sink interface.
type Document struct {
	// Sections are kept in the order they were appended.
	Sections []Section `json:"sections"`

	// pending holds a heading that has not yet received its table.
	pending *string
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{Sections: []Section{}}
}

// AppendHeading starts a new section with the given heading.
func (d *Document) AppendHeading(text string) {
	d.flushPending()
	d.pending = &text
}

// AppendTable completes the current section with t.
// A table appended without a preceding heading gets an empty heading.
func (d *Document) AppendTable(t Table) {
	heading := ""
	if d.pending != nil {
		heading = *d.pending
		d.pending = nil
	}
	d.Sections = append(d.Sections, Section{Heading: heading, Table: t})
}

// flushPending turns a dangling heading into a section with an empty table.
func (d *Document) flushPending() {
	if d.pending == nil {
		return
	}
	d.Sections = append(d.Sections, Section{Heading: *d.pending, Table: NewTable()})
	d.pending = nil
}

// Close flushes a trailing heading that never received a table.
func (d *Document) Close() {
	d.flushPending()
}

// TotalRows returns the number of data rows across all sections.
func (d *Document) TotalRows() int {
	n := 0
	for _, s := range d.Sections {
		n += s.Table.Len()
	}
	return n
}
