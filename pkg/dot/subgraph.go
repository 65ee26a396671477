package dot

import "strings"

// ClusterPrefix is the identifier prefix the layout engine uses to
// recognise clusters.
const ClusterPrefix = "cluster"

// Subgraph is a nested statement block, optionally drawn as a cluster. A
// subgraph has no directedness of its own; edges inside it use the
// operator of the graph it is rendered in.
type Subgraph struct {
	id      string
	named   bool
	cluster bool
	body    []Statement
}

// NewSubgraph returns a named subgraph. An empty name renders as
// "subgraph {" without identifier.
func NewSubgraph(id string) Subgraph { return Subgraph{id: id, named: true} }

// AnonymousSubgraph returns a bare "{ ... }" block.
func AnonymousSubgraph() Subgraph { return Subgraph{} }

// NewCluster returns a subgraph drawn as a bounded group. The identifier
// gets the "cluster_" prefix unless it already starts with "cluster".
func NewCluster(id string) Subgraph {
	if !strings.HasPrefix(id, ClusterPrefix) {
		id = ClusterPrefix + "_" + id
	}
	return Subgraph{id: id, named: true, cluster: true}
}

// ID returns the subgraph identifier and whether it has one.
func (s Subgraph) ID() (string, bool) { return s.id, s.named }

// IsCluster reports whether the engine draws s as a cluster.
func (s Subgraph) IsCluster() bool {
	return s.cluster || s.named && strings.HasPrefix(s.id, ClusterPrefix)
}

// Len returns the number of statements in the body.
func (s Subgraph) Len() int { return len(s.body) }

// Statements returns a copy of the body.
func (s Subgraph) Statements() []Statement { return append([]Statement(nil), s.body...) }

// Add returns a copy of s with stmts appended. Nil statements are skipped.
// Root level "graph [...]" blocks are not SubgraphStatements, so they cannot
// be added here.
func (s Subgraph) Add(stmts ...SubgraphStatement) Subgraph {
	s.body = appendStmts(s.body, stmts...)
	return s
}

// With returns a copy of s that sets attrs as bare attribute statements.
func (s Subgraph) With(attrs ...SubgraphAttr) Subgraph {
	s.body = appendStmts(s.body, attrStmts(unwrap(attrs))...)
	return s
}

// Apply is With for untyped attributes.
func (s Subgraph) Apply(attrs ...Attribute) (Subgraph, error) {
	if err := checkAll(KindSubgraph, attrs); err != nil {
		return s, err
	}
	s.body = appendStmts(s.body, attrStmts(attrs)...)
	return s, nil
}

// Copy returns a copy of s that does not share its statement slice.
func (s Subgraph) Copy() Subgraph {
	s.body = append([]Statement(nil), s.body...)
	return s
}

// Format renders s standalone. directed selects the edge operator, which is
// normally inherited from the enclosing graph.
func (s Subgraph) Format(directed bool) string {
	w := &writer{directed: directed}
	s.render(w)
	return w.buf.String()
}

// String renders s standalone in an undirected context.
func (s Subgraph) String() string { return s.Format(false) }

func (s Subgraph) header() string {
	switch {
	case !s.named:
		return ""
	case s.id == "":
		return "subgraph "
	default:
		return "subgraph " + Quote(s.id) + " "
	}
}

func (s Subgraph) render(w *writer) { w.block(s.header(), s.body) }

func (s Subgraph) endpoint(w *writer) { s.render(w) }

func (Subgraph) graphStatement()    {}
func (Subgraph) subgraphStatement() {}
