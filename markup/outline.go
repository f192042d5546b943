package markup

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/orayew2002/rast-html/domain"
)

// OutlineEntry is one heading in the navigation tree.
type OutlineEntry struct {
	Level    int
	Text     string
	ID       string
	Children []*OutlineEntry
}

// Outline arranges the headings of doc into a tree. A heading becomes the
// child of the closest preceding heading with a lower level; ids match the
// ones the HTML renderer assigns.
func Outline(doc *domain.Document) []*OutlineEntry {
	type frame struct {
		level    int
		children *[]*OutlineEntry
	}

	var roots []*OutlineEntry
	stack := []frame{{level: 0, children: &roots}}

	for i, h := range doc.Headings() {
		entry := &OutlineEntry{Level: h.Level, Text: h.Text, ID: HeadingID(h.Level, i+1)}

		for len(stack) > 1 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		*top.children = append(*top.children, entry)
		stack = append(stack, frame{level: h.Level, children: &entry.Children})
	}

	return roots
}

// outlineNav renders entries as a <nav> of nested link lists. Interactive
// outlines get a filter box and a caret on every node with children; nodes
// start expanded.
func outlineNav(entries []*OutlineEntry, interactive bool) *html.Node {
	nav := element(atom.Nav, attr("class", "outline"), attr("aria-label", "Outline"))
	if interactive {
		nav.AppendChild(element(atom.Input,
			attr("type", "search"),
			attr("id", "outline-filter"),
			attr("placeholder", "Filter headings"),
		))
	}
	if len(entries) > 0 {
		nav.AppendChild(outlineList(entries, interactive))
	}
	return nav
}

func outlineList(entries []*OutlineEntry, interactive bool) *html.Node {
	ul := element(atom.Ul)
	for _, e := range entries {
		li := element(atom.Li, attr("class", "outline-node"))

		branch := len(e.Children) > 0
		if branch && interactive {
			li.Attr[0].Val = "outline-node branch expanded"
			li.AppendChild(element(atom.Span,
				attr("class", "caret"),
				attr("role", "button"),
				attr("aria-expanded", "true"),
				attr("aria-label", "Toggle "+e.Text),
			))
		}

		a := element(atom.A, attr("href", "#"+e.ID))
		a.AppendChild(text(e.Text))
		li.AppendChild(a)

		if branch {
			li.AppendChild(outlineList(e.Children, interactive))
		}
		ul.AppendChild(li)
	}
	return ul
}
