package markup

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/orayew2002/rast-html/domain"
)

// RegisterDefaults registers the built-in handlers for headings, descriptions
// and tables.
func RegisterDefaults(r *Registry) {
	r.Register(domain.KindHeading, handleHeading)
	r.Register(domain.KindDescription, handleDescription)
	r.Register(domain.KindTable, handleTable)
}

// HeadingID returns the anchor id of the seq-th heading (1-based, counted over
// the whole document) at level.
func HeadingID(level, seq int) string {
	return fmt.Sprintf("header-%d-%d", level, seq)
}

var headingAtoms = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// ---------- heading ----------

func handleHeading(c *Canvas, n domain.Node) error {
	h, ok := n.(domain.Heading)
	if !ok {
		return fmt.Errorf("heading handler: unexpected node %T", n)
	}
	if h.Level < 1 {
		return fmt.Errorf("heading %q: invalid level %d", h.Text, h.Level)
	}

	id := c.NextHeadingID(h.Level)

	var el *html.Node
	if h.Level <= len(headingAtoms) {
		el = element(headingAtoms[h.Level-1], attr("id", id))
	} else {
		// HTML stops at h6; deeper levels keep their rank through ARIA.
		el = element(atom.Div,
			attr("id", id),
			attr("class", "heading heading-"+strconv.Itoa(h.Level)),
			attr("role", "heading"),
			attr("aria-level", strconv.Itoa(h.Level)),
		)
	}
	el.AppendChild(text(h.Text))
	c.Parent.AppendChild(el)

	return nil
}

// ---------- description ----------

func handleDescription(c *Canvas, n domain.Node) error {
	d, ok := n.(domain.Description)
	if !ok {
		return fmt.Errorf("description handler: unexpected node %T", n)
	}

	p := element(atom.P, attr("class", "description"))
	p.AppendChild(text(d.Text))
	c.Parent.AppendChild(p)

	return nil
}

// ---------- table ----------

func handleTable(c *Canvas, n domain.Node) error {
	t, ok := n.(domain.Table)
	if !ok {
		return fmt.Errorf("table handler: unexpected node %T", n)
	}

	table := element(atom.Table, attr("class", "data"))

	thead := element(atom.Thead)
	thead.AppendChild(tableRow(atom.Th, t.Header))
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tbody.AppendChild(tableRow(atom.Td, row))
	}
	table.AppendChild(tbody)

	c.Parent.AppendChild(table)
	return nil
}

func tableRow(cell atom.Atom, values []string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		td := element(cell)
		td.AppendChild(text(v))
		tr.AppendChild(td)
	}
	return tr
}

// ---------- helpers ----------

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
