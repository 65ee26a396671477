package dot

// Edge connects two endpoints. The operator is chosen by the root graph:
// "->" in a digraph and "--" otherwise.
type Edge struct {
	from, to Endpoint
	attrs    Attributes
}

// NewEdge returns an edge between from and to.
func NewEdge(from, to Endpoint) Edge { return Edge{from: from, to: to} }

// From returns the tail endpoint.
func (e Edge) From() Endpoint { return e.from }

// To returns the head endpoint.
func (e Edge) To() Endpoint { return e.to }

// Attributes returns the edge attributes.
func (e Edge) Attributes() Attributes { return e.attrs }

// With returns a copy of e with attrs appended.
func (e Edge) With(attrs ...EdgeAttr) Edge {
	e.attrs = e.attrs.Add(unwrap(attrs)...)
	return e
}

// Apply is With for untyped attributes.
func (e Edge) Apply(attrs ...Attribute) (Edge, error) {
	if err := checkAll(KindEdge, attrs); err != nil {
		return e, err
	}
	e.attrs = e.attrs.Add(attrs...)
	return e, nil
}

func (e Edge) render(w *writer) {
	writeEndpoint(w, e.from)
	w.buf.WriteString(w.edgeOp())
	writeEndpoint(w, e.to)
	w.buf.WriteString(e.attrs.Render())
}

func (Edge) graphStatement()    {}
func (Edge) subgraphStatement() {}

// A missing endpoint renders as the empty identifier.
func writeEndpoint(w *writer, ep Endpoint) {
	if ep == nil {
		w.buf.WriteString(Quote(""))
		return
	}
	ep.endpoint(w)
}
