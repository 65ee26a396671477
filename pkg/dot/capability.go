package dot

import (
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Kind is one of the four element kinds an attribute can be attached to.
type Kind uint8

const (
	KindGraph Kind = 1 << iota
	KindSubgraph
	KindNode
	KindEdge
)

// String returns the lower-case DOT keyword for the kind. Subgraphs use
// "subgraph" even though the engine reads their attributes as cluster
// attributes.
func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindSubgraph:
		return "subgraph"
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	}
	return "unknown"
}

// Capability is the set of element kinds an attribute is defined for.
type Capability uint8

// Capability tags. Letters stand for Graph, Subgraph (cluster), Node and Edge.
const (
	CapG    = Capability(KindGraph)
	CapS    = Capability(KindSubgraph)
	CapN    = Capability(KindNode)
	CapE    = Capability(KindEdge)
	CapGS   = CapG | CapS
	CapGN   = CapG | CapN
	CapSN   = CapS | CapN
	CapNE   = CapN | CapE
	CapGNE  = CapG | CapN | CapE
	CapGSN  = CapG | CapS | CapN
	CapSNE  = CapS | CapN | CapE
	CapGSNE = CapG | CapS | CapN | CapE
)

// Has reports whether the capability includes kind k.
func (c Capability) Has(k Kind) bool { return c&Capability(k) != 0 }

// Includes reports whether every kind in o is also in c.
func (c Capability) Includes(o Capability) bool { return c&o == o }

// String returns the capability tag letters in G, S, N, E order.
func (c Capability) String() string {
	var b strings.Builder
	for _, k := range []struct {
		kind   Kind
		letter byte
	}{{KindGraph, 'G'}, {KindSubgraph, 'S'}, {KindNode, 'N'}, {KindEdge, 'E'}} {
		if c.Has(k.kind) {
			b.WriteByte(k.letter)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

func (c Capability) check(a Attribute, k Kind) error {
	if !c.Has(k) {
		return errors.New(errors.ErrCodeCapability, "attribute '%s' (%s) cannot be attached to a %s", a.name, c, k)
	}
	return nil
}

// Attr is implemented by every typed attribute. The marker interfaces below
// narrow it to the element kinds an attribute may be attached to; the
// concrete Attr* types implement exactly the markers of their tag, so the
// compiler rejects an attribute on an element it is not defined for.
type Attr interface {
	Attribute() Attribute
}

// GraphAttr is an attribute valid at the root graph level.
type GraphAttr interface {
	Attr
	graphAttr()
}

// SubgraphAttr is an attribute valid on subgraphs and clusters.
type SubgraphAttr interface {
	Attr
	subgraphAttr()
}

// NodeAttr is an attribute valid on nodes.
type NodeAttr interface {
	Attr
	nodeAttr()
}

// EdgeAttr is an attribute valid on edges.
type EdgeAttr interface {
	Attr
	edgeAttr()
}

// AttrG is an attribute defined for Graph-only.
type AttrG struct{ a Attribute }

func (x AttrG) Attribute() Attribute { return x.a }
func (AttrG) graphAttr()             {}

// AttrS is an attribute defined for subgraph/cluster-only.
type AttrS struct{ a Attribute }

func (x AttrS) Attribute() Attribute { return x.a }
func (AttrS) subgraphAttr()          {}

// AttrN is an attribute defined for node-only.
type AttrN struct{ a Attribute }

func (x AttrN) Attribute() Attribute { return x.a }
func (AttrN) nodeAttr()              {}

// AttrE is an attribute defined for edge-only.
type AttrE struct{ a Attribute }

func (x AttrE) Attribute() Attribute { return x.a }
func (AttrE) edgeAttr()              {}

// AttrGS is an attribute defined for graph and cluster.
type AttrGS struct{ a Attribute }

func (x AttrGS) Attribute() Attribute { return x.a }
func (AttrGS) graphAttr()             {}
func (AttrGS) subgraphAttr()          {}

// AttrGN is an attribute defined for graph and node.
type AttrGN struct{ a Attribute }

func (x AttrGN) Attribute() Attribute { return x.a }
func (AttrGN) graphAttr()             {}
func (AttrGN) nodeAttr()              {}

// AttrSN is an attribute defined for cluster and node.
type AttrSN struct{ a Attribute }

func (x AttrSN) Attribute() Attribute { return x.a }
func (AttrSN) subgraphAttr()          {}
func (AttrSN) nodeAttr()              {}

// AttrNE is an attribute defined for node and edge.
type AttrNE struct{ a Attribute }

func (x AttrNE) Attribute() Attribute { return x.a }
func (AttrNE) nodeAttr()              {}
func (AttrNE) edgeAttr()              {}

// AttrGNE is an attribute defined for graph, node and edge.
type AttrGNE struct{ a Attribute }

func (x AttrGNE) Attribute() Attribute { return x.a }
func (AttrGNE) graphAttr()             {}
func (AttrGNE) nodeAttr()              {}
func (AttrGNE) edgeAttr()              {}

// AttrGSN is an attribute defined for graph, cluster and node.
type AttrGSN struct{ a Attribute }

func (x AttrGSN) Attribute() Attribute { return x.a }
func (AttrGSN) graphAttr()             {}
func (AttrGSN) subgraphAttr()          {}
func (AttrGSN) nodeAttr()              {}

// AttrSNE is an attribute defined for cluster, node and edge.
type AttrSNE struct{ a Attribute }

func (x AttrSNE) Attribute() Attribute { return x.a }
func (AttrSNE) subgraphAttr()          {}
func (AttrSNE) nodeAttr()              {}
func (AttrSNE) edgeAttr()              {}

// AttrGSNE is an attribute defined for every element.
type AttrGSNE struct{ a Attribute }

func (x AttrGSNE) Attribute() Attribute { return x.a }
func (AttrGSNE) graphAttr()             {}
func (AttrGSNE) subgraphAttr()          {}
func (AttrGSNE) nodeAttr()              {}
func (AttrGSNE) edgeAttr()              {}
