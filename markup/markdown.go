package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/orayew2002/rast-html/domain"
)

// MarkdownRenderer renders documents as GitHub Flavored Markdown.
type MarkdownRenderer struct{}

// NewMarkdown creates a MarkdownRenderer.
func NewMarkdown() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes doc to w.
func (r *MarkdownRenderer) Render(w io.Writer, doc *domain.Document) error {
	md := markdown.NewMarkdown(w)

	if doc.Title != "" {
		md.PlainText("**" + doc.Title + "**")
		md.PlainText("")
	}

	for i, n := range doc.Nodes {
		switch v := n.(type) {
		case domain.Heading:
			writeHeading(md, v)
		case domain.Description:
			md.Blockquote(v.Text)
		case domain.Table:
			md.Table(tableSet(v))
		default:
			return fmt.Errorf("node %d: unsupported %s", i, n.Kind())
		}
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return nil
}

func writeHeading(md *markdown.Markdown, h domain.Heading) {
	switch h.Level {
	case 1:
		md.H1(h.Text)
	case 2:
		md.H2(h.Text)
	case 3:
		md.H3(h.Text)
	case 4:
		md.H4(h.Text)
	case 5:
		md.H5(h.Text)
	case 6:
		md.H6(h.Text)
	default:
		md.PlainText("**" + h.Text + "**")
	}
}

// cellEscaper keeps a cell inside its table column: pipes would open a new
// column and line breaks would end the row.
var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

func tableSet(t domain.Table) markdown.TableSet {
	set := markdown.TableSet{
		Header: make([]string, len(t.Header)),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, h := range t.Header {
		set.Header[i] = cellEscaper.Replace(h)
	}
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = cellEscaper.Replace(c)
		}
		set.Rows[i] = cells
	}
	return set
}
