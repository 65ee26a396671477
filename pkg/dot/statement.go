package dot

import (
	"github.com/matzehuels/dotkit/pkg/errors"
)

// Statement is one line (or block) of a graph body. The set of statements
// is closed: Node, Edge, Defaults, GraphBlock, ClusterBlock, AttrStmt and
// Subgraph.
type Statement interface {
	render(w *writer)
}

// GraphStatement is a statement that may appear at the top level of a Graph.
type GraphStatement interface {
	Statement
	graphStatement()
}

// SubgraphStatement is a statement that may appear inside a Subgraph.
type SubgraphStatement interface {
	Statement
	subgraphStatement()
}

// ScopeStatement may appear in any scope: nodes, edges, subgraphs and node
// or edge defaults.
type ScopeStatement interface {
	GraphStatement
	SubgraphStatement
}

// Endpoint is either side of an edge: a Node or a Subgraph.
type Endpoint interface {
	Statement
	endpoint(w *writer)
}

// Defaults sets default attributes for all following node or edge
// statements in the same scope.
type Defaults struct {
	kind  Kind
	attrs Attributes
}

// NodeDefaults returns a "node [...]" statement.
func NodeDefaults(first NodeAttr, rest ...NodeAttr) Defaults {
	return Defaults{kind: KindNode, attrs: Attributes{}.Add(unwrap(append([]NodeAttr{first}, rest...))...)}
}

// EdgeDefaults returns an "edge [...]" statement.
func EdgeDefaults(first EdgeAttr, rest ...EdgeAttr) Defaults {
	return Defaults{kind: KindEdge, attrs: Attributes{}.Add(unwrap(append([]EdgeAttr{first}, rest...))...)}
}

// NewDefaults builds a node or edge defaults statement from untyped
// attributes. Every attribute must be defined for kind and at least one is
// required. Graph level defaults are built with NewGraphBlock and
// NewClusterBlock.
func NewDefaults(kind Kind, attrs ...Attribute) (Defaults, error) {
	if kind != KindNode && kind != KindEdge {
		return Defaults{}, errors.New(errors.ErrCodeInvalidState, "%s defaults are not node or edge defaults", kind)
	}
	if err := checkDefaults(kind, attrs); err != nil {
		return Defaults{}, err
	}
	return Defaults{kind: kind, attrs: Attributes{}.Add(attrs...)}, nil
}

// Kind returns the element kind the defaults apply to.
func (d Defaults) Kind() Kind { return d.kind }

// Attributes returns the default attributes.
func (d Defaults) Attributes() Attributes { return d.attrs }

func (d Defaults) render(w *writer) {
	if d.kind == KindEdge {
		w.buf.WriteString("edge")
	} else {
		w.buf.WriteString("node")
	}
	w.buf.WriteString(d.attrs.Render())
}

func (Defaults) graphStatement()    {}
func (Defaults) subgraphStatement() {}

// GraphBlock is a "graph [...]" statement at the top level of a Graph. It
// only accepts graph attributes and cannot be added to a subgraph.
type GraphBlock struct {
	attrs Attributes
}

// GraphDefaults returns a "graph [...]" statement for the root graph.
func GraphDefaults(first GraphAttr, rest ...GraphAttr) GraphBlock {
	return GraphBlock{attrs: Attributes{}.Add(unwrap(append([]GraphAttr{first}, rest...))...)}
}

// NewGraphBlock is GraphDefaults for untyped attributes.
func NewGraphBlock(attrs ...Attribute) (GraphBlock, error) {
	if err := checkDefaults(KindGraph, attrs); err != nil {
		return GraphBlock{}, err
	}
	return GraphBlock{attrs: Attributes{}.Add(attrs...)}, nil
}

// Attributes returns the graph attributes.
func (b GraphBlock) Attributes() Attributes { return b.attrs }

func (b GraphBlock) render(w *writer) { w.buf.WriteString("graph" + b.attrs.Render()) }

func (GraphBlock) graphStatement() {}

// ClusterBlock is a "graph [...]" statement inside a subgraph or cluster. It
// only accepts subgraph attributes and cannot be added to the root graph.
type ClusterBlock struct {
	attrs Attributes
}

// ClusterDefaults returns a "graph [...]" statement for use inside a
// subgraph or cluster.
func ClusterDefaults(first SubgraphAttr, rest ...SubgraphAttr) ClusterBlock {
	return ClusterBlock{attrs: Attributes{}.Add(unwrap(append([]SubgraphAttr{first}, rest...))...)}
}

// NewClusterBlock is ClusterDefaults for untyped attributes.
func NewClusterBlock(attrs ...Attribute) (ClusterBlock, error) {
	if err := checkDefaults(KindSubgraph, attrs); err != nil {
		return ClusterBlock{}, err
	}
	return ClusterBlock{attrs: Attributes{}.Add(attrs...)}, nil
}

// Attributes returns the subgraph attributes.
func (b ClusterBlock) Attributes() Attributes { return b.attrs }

func (b ClusterBlock) render(w *writer) { w.buf.WriteString("graph" + b.attrs.Render()) }

func (ClusterBlock) subgraphStatement() {}

func checkDefaults(kind Kind, attrs []Attribute) error {
	if len(attrs) == 0 {
		return errors.New(errors.ErrCodeInvalidState, "%s defaults need at least one attribute", kind)
	}
	return checkAll(kind, attrs)
}

// AttrStmt is a bare "name=value" statement that sets an attribute on the
// enclosing graph or subgraph.
type AttrStmt struct {
	attr Attribute
}

// Attribute returns the attribute the statement sets.
func (s AttrStmt) Attribute() Attribute { return s.attr }

func (s AttrStmt) render(w *writer) { w.buf.WriteString(s.attr.String()) }

func attrStmts(attrs []Attribute) []Statement {
	out := make([]Statement, 0, len(attrs))
	for _, a := range attrs {
		if !a.IsZero() {
			out = append(out, AttrStmt{attr: a})
		}
	}
	return out
}

// appendStmts returns body extended with stmts. body is never modified in
// place so values sharing it stay unchanged.
func appendStmts[S Statement](body []Statement, stmts ...S) []Statement {
	out := body[:len(body):len(body)]
	for _, s := range stmts {
		if any(s) != nil {
			out = append(out, s)
		}
	}
	return out
}
