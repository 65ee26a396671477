package dot

import "github.com/matzehuels/dotkit/pkg/errors"

// Node is a node statement. Node values are immutable.
type Node struct {
	id    string
	port  Port
	attrs Attributes
}

// NewNode returns a node with the given identifier.
func NewNode(id string) Node { return Node{id: id} }

// ID returns the node identifier.
func (n Node) ID() string { return n.id }

// Port returns the node port, if any.
func (n Node) Port() Port { return n.port }

// Attributes returns the node attributes.
func (n Node) Attributes() Attributes { return n.attrs }

// WithPort returns a copy of n that refers to port p. The port is part of
// the node reference wherever n is rendered, including edge endpoints. A
// zero Port clears it; an unknown compass point is rejected.
func (n Node) WithPort(p Port) (Node, error) {
	if p.Compass != compassUnset && !p.Compass.Valid() {
		return n, errors.New(errors.ErrCodeInvalidValue, "node '%s': unknown compass point %q in port", n.id, p.Compass)
	}
	n.port = p
	return n, nil
}

// With returns a copy of n with attrs appended.
func (n Node) With(attrs ...NodeAttr) Node {
	n.attrs = n.attrs.Add(unwrap(attrs)...)
	return n
}

// Apply is With for untyped attributes. It fails if any attribute is not
// defined for nodes.
func (n Node) Apply(attrs ...Attribute) (Node, error) {
	if err := checkAll(KindNode, attrs); err != nil {
		return n, err
	}
	n.attrs = n.attrs.Add(attrs...)
	return n, nil
}

// To returns an edge from n to target.
func (n Node) To(target Endpoint) Edge { return NewEdge(n, target) }

func (n Node) ref() string {
	if n.port.IsZero() {
		return Quote(n.id)
	}
	return Quote(n.id) + ":" + n.port.ref()
}

func (n Node) render(w *writer) {
	w.buf.WriteString(n.ref())
	w.buf.WriteString(n.attrs.Render())
}

// An edge only names the node; its attributes belong to the node statement.
func (n Node) endpoint(w *writer) { w.buf.WriteString(n.ref()) }

func (Node) graphStatement()    {}
func (Node) subgraphStatement() {}
