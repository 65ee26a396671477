// Package pkg provides the libraries behind dotkit, a builder and renderer
// for Graphviz DOT graphs.
//
// # Overview
//
// Graphs are assembled from immutable values. Each attribute knows which
// kinds of element it may be attached to, and that knowledge is enforced by
// the compiler where possible and at runtime everywhere else:
//
//	Graph document (YAML / TOML / JSON) or Go code
//	         ↓
//	    [document] package (decode, resolve attribute names)
//	         ↓
//	    [dot] package (capability-checked builders, DOT serialization)
//	         ↓
//	    [engine] package (Graphviz layout: exec, embedded, cached)
//	         ↓
//	    SVG/PNG/PDF/... output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/dotkit/pkg/dot"
//	    "github.com/matzehuels/dotkit/pkg/engine"
//	)
//
//	a := dot.NewNode("A").With(dot.NodeShape(dot.ShapeBox))
//	g := dot.NewDigraph("G").Add(a, a.To(dot.NewNode("B")))
//
//	fmt.Println(g) // digraph G { ... }
//
//	svg, err := engine.RenderGraph(context.Background(), engine.NewExec("", 0, nil), g, engine.Dot, engine.SVG)
//
// # Main Packages
//
// [dot] - The graph model: nodes, edges, subgraphs and clusters, the
// attribute catalog with its capability algebra, quoting and serialization.
//
// [document] - Declarative graph descriptions and their translation into
// [dot] values, reporting misplaced attributes with the path of the entry.
//
// [engine] - Layout engine adapters. [engine.Exec] runs the Graphviz binary
// with a timeout, [engine.Embedded] uses the WebAssembly build of Graphviz,
// and [engine.Cached] memoizes either of them.
//
// ## Infrastructure
//
// [cache] - Artifact cache backends (file, Redis, null) and key derivation.
//
// [config] - TOML configuration with defaults and validation.
//
// [errors] - Coded errors shared by all packages.
//
// [observability] - Hooks for render, cache and HTTP metrics.
//
// [buildinfo] - Version information injected at build time.
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/dot
// [document]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/document
// [engine]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/engine
// [cache]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dotkit/pkg/buildinfo
package pkg
