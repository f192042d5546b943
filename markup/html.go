package markup

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/orayew2002/rast-html/domain"
)

// HTMLOptions controls the cosmetic parts of the HTML output. None of them
// change the headings, descriptions or tables.
type HTMLOptions struct {
	// Lang is the value of <html lang>. Defaults to "en".
	Lang string
	// Stylesheet is linked from <head> when set.
	Stylesheet string
	// InlineStyle embeds the default stylesheet.
	InlineStyle bool
	// Outline adds a navigation tree of all headings.
	Outline bool
	// Script adds the outline filter box and its script.
	Script bool
}

// HTMLRenderer renders documents as a single HTML page.
type HTMLRenderer struct {
	opts     HTMLOptions
	registry *Registry
}

// NewHTML creates an HTMLRenderer with the default node handlers.
func NewHTML(opts HTMLOptions) *HTMLRenderer {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	r := NewRegistry()
	RegisterDefaults(r)
	return &HTMLRenderer{opts: opts, registry: r}
}

// Registry exposes the handler registry so callers can override how a node
// kind is rendered.
func (r *HTMLRenderer) Registry() *Registry {
	return r.registry
}

// Render writes doc to w.
func (r *HTMLRenderer) Render(w io.Writer, doc *domain.Document) error {
	root, err := r.Tree(doc)
	if err != nil {
		return err
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Tree builds the HTML node tree of doc without serializing it.
func (r *HTMLRenderer) Tree(doc *domain.Document) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, attr("lang", r.opts.Lang))
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	for _, n := range headElements(doc.Title, r.opts) {
		head.AppendChild(n)
	}
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	htmlEl.AppendChild(body)

	if r.opts.Outline {
		body.AppendChild(outlineNav(Outline(doc), r.opts.Script))
	}

	content := element(atom.Main, attr("class", "report"))
	body.AppendChild(content)

	canvas := &Canvas{Parent: content}
	for i, n := range doc.Nodes {
		ok, err := r.registry.Process(canvas, n)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, n.Kind(), err)
		}
		if !ok {
			return nil, fmt.Errorf("node %d: no handler for %s", i, n.Kind())
		}
	}

	if r.opts.Script {
		body.AppendChild(scriptElement())
	}

	return root, nil
}
