// Package markup serializes report documents to HTML and Markdown.
package markup

import (
	"fmt"
	"io"

	"github.com/orayew2002/rast-html/domain"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, doc *domain.Document) error
}

// New returns the renderer for format. opts only apply to HTML.
func New(format string, opts HTMLOptions) (Renderer, error) {
	switch format {
	case "", FormatHTML:
		return NewHTML(opts), nil
	case FormatMarkdown, "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
