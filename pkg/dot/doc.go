// Package dot builds Graphviz DOT documents from typed, immutable values.
//
// # Overview
//
// A document is a tree of statements rooted at a [Graph]. Statements are
// [Node], [Edge], [Defaults], [GraphBlock], [ClusterBlock], [AttrStmt] and
// [Subgraph]; subgraphs nest to any depth. Every builder method returns a modified copy, so values can be
// shared freely and reused as templates:
//
//	base := dot.NewDigraph("G").Add(dot.NodeDefaults(dot.NodeShape(dot.ShapeBox)))
//	a := base.Add(dot.NewNode("A"))
//	b := base.Add(dot.NewNode("B")) // a is unchanged
//
// [Graph.Add] takes [GraphStatement] values and [Subgraph.Add] takes
// [SubgraphStatement] values. A root "graph [...]" block built with
// [GraphDefaults] therefore cannot end up inside a cluster, and a
// [ClusterDefaults] block cannot end up at the root.
//
// # Attributes
//
// Attribute constructors return values typed by the element kinds the
// attribute is defined for. [AttrGNE], for example, may be attached to the
// graph, nodes and edges but not to clusters. Each element's With method
// accepts only its own marker interface ([NodeAttr], [EdgeAttr],
// [GraphAttr], [SubgraphAttr]), so attaching a graph-only attribute to a node
// does not compile.
//
// Constructors with a restricted value domain return an error instead:
//
//	fs, err := dot.FontSize(0.5) // minimum is 1
//
// Untyped attributes from [Custom] or [Parse] go through Apply, which checks
// the capability at run time and reports an errors.ErrCodeCapability error.
//
// # Output
//
// [Graph.String] renders the document. Identifiers made of ASCII letters and
// digits are emitted bare, except DOT keywords and digit-led names; everything
// else is quoted, and so are enumerated values outside the catalog. Text
// values are always quoted. Edges use "->" when the root graph is directed and "--" otherwise,
// at every nesting depth. Rendering is deterministic and never fails.
package dot
