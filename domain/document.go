package domain

// NodeKind identifies the type of a document node.
type NodeKind int

const (
	KindHeading NodeKind = iota + 1
	KindDescription
	KindTable
)

func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindDescription:
		return "description"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Node is one element of a Document.
type Node interface {
	Kind() NodeKind
}

// Heading opens a group at nesting Level (1 = outermost).
type Heading struct {
	Level int
	Text  string
}

// Description is the narrative text placed above the tables of a run of rows
// sharing the same description key.
type Description struct {
	Text string
}

// Table is one data table: a header row and the selected cells of each row.
type Table struct {
	Header []string
	Rows   [][]string
}

func (Heading) Kind() NodeKind     { return KindHeading }
func (Description) Kind() NodeKind { return KindDescription }
func (Table) Kind() NodeKind       { return KindTable }

// Document is the ordered output of a report build.
type Document struct {
	Title string
	Nodes []Node
}

// Headings returns all headings in document order.
func (d *Document) Headings() []Heading {
	var out []Heading
	for _, n := range d.Nodes {
		if h, ok := n.(Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Tables returns all tables in document order.
func (d *Document) Tables() []Table {
	var out []Table
	for _, n := range d.Nodes {
		if t, ok := n.(Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// RowCount returns the number of data rows across all tables.
func (d *Document) RowCount() int {
	n := 0
	for _, t := range d.Tables() {
		n += len(t.Rows)
	}
	return n
}
