package markup

import (
	_ "embed"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed assets/report.css
var defaultStylesheet string

//go:embed assets/outline.js
var outlineScript string

// DefaultStylesheet returns the stylesheet inlined by HTMLOptions.InlineStyle.
func DefaultStylesheet() string {
	return defaultStylesheet
}

// headElements returns the <head> children for opts.
func headElements(title string, opts HTMLOptions) []*html.Node {
	meta := element(atom.Meta, attr("charset", "utf-8"))
	viewport := element(atom.Meta,
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1"),
	)

	t := element(atom.Title)
	t.AppendChild(text(title))

	nodes := []*html.Node{meta, viewport, t}

	if opts.InlineStyle {
		style := element(atom.Style)
		style.AppendChild(text(defaultStylesheet))
		nodes = append(nodes, style)
	}

	// A linked stylesheet comes after the inline one so it can override it.
	if opts.Stylesheet != "" {
		nodes = append(nodes, element(atom.Link,
			attr("rel", "stylesheet"),
			attr("href", opts.Stylesheet),
		))
	}

	return nodes
}

func scriptElement() *html.Node {
	s := element(atom.Script)
	s.AppendChild(text(outlineScript))
	return s
}
