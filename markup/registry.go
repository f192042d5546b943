package markup

import (
	"golang.org/x/net/html"

	"github.com/orayew2002/rast-html/domain"
)

// Canvas is the state shared by handlers while one document is rendered.
type Canvas struct {
	// Parent receives the nodes a handler creates.
	Parent *html.Node

	headings int
}

// NextHeadingID returns the id of the next heading at level and advances the
// document-wide heading sequence.
func (c *Canvas) NextHeadingID(level int) string {
	c.headings++
	return HeadingID(level, c.headings)
}

// HandlerFunc renders one document node onto the canvas.
type HandlerFunc func(c *Canvas, n domain.Node) error

// Registry holds node kind → handler mappings.
type Registry struct {
	handlers map[domain.NodeKind]HandlerFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[domain.NodeKind]HandlerFunc)}
}

// Register sets the handler for kind, replacing any earlier one.
func (r *Registry) Register(kind domain.NodeKind, handler HandlerFunc) {
	r.handlers[kind] = handler
}

// Process renders n with the handler registered for its kind.
// Returns true if a handler was executed.
func (r *Registry) Process(c *Canvas, n domain.Node) (bool, error) {
	h, ok := r.handlers[n.Kind()]
	if !ok {
		return false, nil
	}
	if err := h(c, n); err != nil {
		return false, err
	}
	return true, nil
}
