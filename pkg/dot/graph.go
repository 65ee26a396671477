package dot

import (
	"io"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Graph is the root of a DOT document. Graph values are immutable: every
// builder method returns a modified copy, so a partially built graph can be
// reused as a template.
type Graph struct {
	id       string
	strict   bool
	directed bool
	body     []Statement
}

// NewGraph returns an undirected graph. An empty id is omitted from output.
func NewGraph(id string) Graph { return Graph{id: id} }

// NewDigraph returns a directed graph.
func NewDigraph(id string) Graph { return Graph{id: id, directed: true} }

func (g Graph) ID() string       { return g.id }
func (g Graph) IsStrict() bool   { return g.strict }
func (g Graph) IsDirected() bool { return g.directed }

// Len returns the number of top-level statements.
func (g Graph) Len() int { return len(g.body) }

// Statements returns a copy of the top-level statements.
func (g Graph) Statements() []Statement { return append([]Statement(nil), g.body...) }

// WithStrict returns a copy of g with the strict flag set. The flag can only
// change while the body is empty.
func (g Graph) WithStrict(strict bool) (Graph, error) {
	if err := g.checkMutable("strict"); err != nil {
		return g, err
	}
	g.strict = strict
	return g, nil
}

// WithDirected returns a copy of g with the directed flag set. The flag can
// only change while the body is empty.
func (g Graph) WithDirected(directed bool) (Graph, error) {
	if err := g.checkMutable("directed"); err != nil {
		return g, err
	}
	g.directed = directed
	return g, nil
}

func (g Graph) checkMutable(flag string) error {
	if len(g.body) > 0 {
		return errors.New(errors.ErrCodeInvalidState, "cannot change %s after %d statements were added", flag, len(g.body))
	}
	return nil
}

// Add returns a copy of g with stmts appended. Nil statements are skipped.
// Cluster "graph [...]" blocks are not GraphStatements, so they cannot be
// added here.
func (g Graph) Add(stmts ...GraphStatement) Graph {
	g.body = appendStmts(g.body, stmts...)
	return g
}

// With returns a copy of g that sets attrs as bare attribute statements.
func (g Graph) With(attrs ...GraphAttr) Graph {
	g.body = appendStmts(g.body, attrStmts(unwrap(attrs))...)
	return g
}

// Apply is With for untyped attributes. It fails if any attribute is not
// defined at graph level.
func (g Graph) Apply(attrs ...Attribute) (Graph, error) {
	if err := checkAll(KindGraph, attrs); err != nil {
		return g, err
	}
	g.body = appendStmts(g.body, attrStmts(attrs)...)
	return g, nil
}

// Copy returns a copy of g that does not share its statement slice.
func (g Graph) Copy() Graph {
	g.body = append([]Statement(nil), g.body...)
	return g
}

// String renders g as DOT text without a trailing newline.
func (g Graph) String() string {
	w := &writer{directed: g.directed}
	w.block(g.header(), g.body)
	return w.buf.String()
}

// WriteTo writes the DOT text followed by a newline to dst.
func (g Graph) WriteTo(dst io.Writer) (int64, error) {
	n, err := io.WriteString(dst, g.String()+"\n")
	return int64(n), err
}

func (g Graph) header() string {
	h := "graph "
	if g.directed {
		h = "digraph "
	}
	if g.strict {
		h = "strict " + h
	}
	if g.id != "" {
		h += Quote(g.id) + " "
	}
	return h
}
